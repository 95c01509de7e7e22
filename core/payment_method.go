package core

// PaymentMethod is the fixed enumerated set of ways a fine can be paid.
type PaymentMethod string

// The accepted payment methods. Cash is accepted in person only by staff;
// the rest are online methods that produce a transaction id.
const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodStripe PaymentMethod = "stripe"
)

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch PaymentMethod(raw) {
	case PaymentMethodCash, PaymentMethodDebit, PaymentMethodCredit, PaymentMethodPayPal, PaymentMethodStripe:
		return PaymentMethod(raw), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// IsCash reports whether the method is an in-person cash payment.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentMethodCash
}
