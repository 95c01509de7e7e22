package core

// UserAccount is the actor registry entry referenced by borrows and fines.
// It is never duplicated into the lending records, only linked by id.
type UserAccount struct {
	ID           UserIDInt64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsActive     bool
	Role         Role
}

// AsActor converts the account into the actor context used by capability checks.
func (u UserAccount) AsActor() Actor {
	return Actor{
		ID:       u.ID,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
