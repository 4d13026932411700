package application

import (
	"testing"

	"github.com/grandplaza/hotel-reservation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaidBooking(t *testing.T) *domain.Booking {
	t.Helper()
	_, customer, room := newFixtures(t)
	booking, err := domain.NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-04"))
	require.NoError(t, err)
	return booking
}

func TestPaymentService_CreatePayment(t *testing.T) {
	booking := newPaidBooking(t)
	svc := NewPaymentService(zap.NewNop())

	payment, err := svc.CreatePayment("PAY001", booking, 300.0)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status())
	assert.Equal(t, 300.0, payment.Amount())
}

func TestPaymentService_CreatePayment_Rejections(t *testing.T) {
	booking := newPaidBooking(t)
	svc := NewPaymentService(zap.NewNop())

	// Nil booking is rejected at the boundary, not translated.
	_, err := svc.CreatePayment("PAY001", nil, 300.0)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))

	_, err = svc.CreatePayment("PAY001", booking, 0)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))

	_, err = svc.CreatePayment("PAY001", booking, -5.0)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))

	// Entity-level ID validation is translated into the same kind.
	_, err = svc.CreatePayment("", booking, 300.0)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))
	assert.True(t, domain.IsInvalidArgument(err))
}

func TestPaymentService_ProcessPayment(t *testing.T) {
	booking := newPaidBooking(t)
	svc := NewPaymentService(zap.NewNop())

	payment, err := svc.CreatePayment("PAY001", booking, 300.0)
	require.NoError(t, err)

	require.NoError(t, svc.ProcessPayment(payment))
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status())

	err = svc.ProcessPayment(payment)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))
	assert.True(t, domain.IsInvalidState(err))
	assert.Contains(t, err.Error(), "failed to process payment")

	err = svc.ProcessPayment(nil)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))
}

func TestPaymentService_MarkPaymentFailed(t *testing.T) {
	booking := newPaidBooking(t)
	svc := NewPaymentService(zap.NewNop())

	payment, err := svc.CreatePayment("PAY001", booking, 300.0)
	require.NoError(t, err)
	require.NoError(t, svc.ProcessPayment(payment))

	require.NoError(t, svc.MarkPaymentFailed(payment))
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status())

	err = svc.MarkPaymentFailed(nil)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))
}

func TestPaymentService_ValidatePayment(t *testing.T) {
	booking := newPaidBooking(t)
	svc := NewPaymentService(zap.NewNop())

	assert.False(t, svc.ValidatePayment(nil), "nil payment is not valid, but raises no error")

	payment, err := svc.CreatePayment("PAY001", booking, 300.0)
	require.NoError(t, err)
	assert.False(t, svc.ValidatePayment(payment))

	require.NoError(t, svc.ProcessPayment(payment))
	assert.True(t, svc.ValidatePayment(payment))

	require.NoError(t, svc.MarkPaymentFailed(payment))
	assert.False(t, svc.ValidatePayment(payment))
}
