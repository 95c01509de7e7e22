package observability_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookwyrmhq/lending-backend-go/testutil/observability"
)

func TestLogHandlerSpy_CapturesRecords(t *testing.T) {
	// arrange
	spy := observability.NewLogHandlerSpy(false)
	logger := slog.New(spy)

	// act
	logger.Info("transaction completed", "duration_ms", int64(7))
	logger.Error("transaction failed", "error", "boom")

	// assert
	records := spy.GetRecords()
	assert.Len(t, records, 2)
	assert.True(t, spy.HasMessage("transaction completed"))
	assert.True(t, spy.HasMessage("transaction failed"))
	assert.False(t, spy.HasMessage("never logged"))
	assert.Equal(t, slog.LevelError, records[1].Level)
}

func TestLogHandlerSpy_Reset(t *testing.T) {
	// arrange
	spy := observability.NewLogHandlerSpy(false)
	logger := slog.New(spy)
	logger.Debug("sql executed")

	// act
	spy.Reset()

	// assert
	assert.Empty(t, spy.GetRecords())
	assert.False(t, spy.HasMessage("sql executed"))
}

func TestTracingCollectorSpy_RecordsSpanLifecycle(t *testing.T) {
	// arrange
	spy := observability.NewTracingCollectorSpy(true)

	// act
	_, span := spy.StartSpan(context.Background(), "lendingstore.within_tx", map[string]string{"operation": "borrow_book"})
	span.AddAttribute("rows_affected", "1")
	spy.FinishSpan(span, "success", map[string]string{"duration_ms": "3"})

	// assert
	records := spy.GetSpanRecords()
	assert.Len(t, records, 1)
	assert.Equal(t, "lendingstore.within_tx", records[0].Name)
	assert.Equal(t, "borrow_book", records[0].StartAttributes["operation"])
	assert.Equal(t, "success", records[0].Status)
	assert.Equal(t, "3", records[0].EndAttributes["duration_ms"])

	spanCtx, ok := span.(*observability.SpySpanContext)
	assert.True(t, ok)
	assert.Equal(t, "1", spanCtx.GetAttributes()["rows_affected"])
}

func TestTracingCollectorSpy_DisabledRecordingStaysEmpty(t *testing.T) {
	// arrange
	spy := observability.NewTracingCollectorSpy(false)

	// act
	_, span := spy.StartSpan(context.Background(), "lendingstore.within_tx", nil)
	spy.FinishSpan(span, "error", nil)

	// assert
	assert.Empty(t, spy.GetSpanRecords())
}
