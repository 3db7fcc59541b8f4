package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentDeps struct {
	bookings *mocks.MockBookingRepo
	oracle   *mocks.MockScreenshotOracle
	images   *mocks.MockImageHost
	notifier *mocks.MockBookingNotifier
	svc      *PaymentService
}

func newPaymentDeps(t *testing.T) *paymentDeps {
	d := &paymentDeps{
		bookings: mocks.NewMockBookingRepo(t),
		oracle:   mocks.NewMockScreenshotOracle(t),
		images:   mocks.NewMockImageHost(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	d.svc = NewPaymentService(d.bookings, d.oracle, d.images, d.notifier, DefaultPaymentConfig(), newTestLogger(t))
	d.svc.now = func() time.Time { return testNow }
	return d
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          "b1",
		Code:        "Alice-2030-06-01-Day",
		UserID:      "u1",
		PropertyID:  "p1",
		BookingDate: testDate,
		Shift:       domain.ShiftDay,
		BuyerName:   "Alice",
		TotalCost:   decimal.NewFromInt(5000),
		Status:      status,
		UpdatedAt:   testNow,
	}
}

func decp(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// expectSubmit wires the Waiting transition and both payment_received notifications.
func (d *paymentDeps) expectSubmit(t *testing.T) *domain.Transition {
	t.Helper()
	var got domain.Transition
	waiting := testBooking(domain.BookingStatusWaiting)
	waiting.UpdatedAt = testNow.Add(time.Second)

	d.bookings.EXPECT().Transition(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tr domain.Transition) {
			got = tr
			waiting.Claim = tr.Claim
		}).
		Return(waiting, nil).Once()
	d.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Event == domain.EventPaymentReceived && n.Audience == domain.AudienceAdmin &&
			n.Version.Equal(waiting.UpdatedAt)
	})).Return(domain.Delivery{Delivered: true, Channel: domain.ChannelMessaging}).Once()
	d.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Event == domain.EventPaymentReceived && n.Audience == domain.AudienceCustomer
	})).Return(domain.Delivery{Delivered: true, Channel: domain.ChannelWeb}).Once()

	return &got
}

func TestPaymentService_SubmitScreenshot_Accepted(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.oracle.EXPECT().Extract(mock.Anything, "https://img/1.png").Return(&domain.ScreenshotAnalysis{
		IsPaymentScreenshot: true,
		Confidence:          0.92,
		Amount:              decp(5000),
		TransactionID:       "TX-1",
		SenderName:          "Alice",
	}, nil)
	tr := d.expectSubmit(t)

	res, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{URL: "https://img/1.png"})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaiting, res.Booking.Status)
	assert.True(t, res.AdminDelivery.Delivered)
	assert.True(t, res.CustomerDelivery.Delivered)

	assert.Equal(t, []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusWaiting}, tr.From)
	assert.Equal(t, domain.BookingStatusWaiting, tr.To)
	require.NotNil(t, tr.Claim)
	assert.Equal(t, domain.ClaimSourceScreenshot, tr.Claim.Source)
	assert.Equal(t, "TX-1", tr.Claim.TransactionID)
	assert.Equal(t, "https://img/1.png", tr.Claim.ScreenshotURL)
	require.NotNil(t, tr.Claim.Confidence)
	assert.InDelta(t, 0.92, *tr.Claim.Confidence, 1e-9)
}

func TestPaymentService_SubmitScreenshot_UploadsRawImage(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.images.EXPECT().Upload(mock.Anything, []byte("png"), "shot.png").Return("https://cdn/shot.png", nil)
	d.oracle.EXPECT().Extract(mock.Anything, "https://cdn/shot.png").Return(&domain.ScreenshotAnalysis{
		IsPaymentScreenshot: true,
		Confidence:          0.9,
		Amount:              decp(5000),
	}, nil)
	tr := d.expectSubmit(t)

	_, err := d.svc.SubmitScreenshot(context.Background(), "b1",
		domain.ScreenshotInput{Data: []byte("png"), Filename: "shot.png"})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/shot.png", tr.Claim.ScreenshotURL)
}

func TestPaymentService_SubmitScreenshot_NotPayment(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.oracle.EXPECT().Extract(mock.Anything, mock.Anything).Return(&domain.ScreenshotAnalysis{
		IsPaymentScreenshot: false,
		Confidence:          0.99,
	}, nil)

	_, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{URL: "https://img/cat.png"})

	assert.ErrorIs(t, err, domain.ErrNotPaymentScreenshot)
	d.bookings.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything)
	d.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestPaymentService_SubmitScreenshot_LowConfidence(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.oracle.EXPECT().Extract(mock.Anything, mock.Anything).Return(&domain.ScreenshotAnalysis{
		IsPaymentScreenshot: true,
		Confidence:          0.4,
		Amount:              decp(5000),
	}, nil)

	_, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{URL: "https://img/blurry.png"})

	assert.ErrorIs(t, err, domain.ErrLowConfidence)
	assert.Equal(t, "validation", domain.Kind(err))
}

func TestPaymentService_SubmitScreenshot_AmountMismatch(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.oracle.EXPECT().Extract(mock.Anything, mock.Anything).Return(&domain.ScreenshotAnalysis{
		IsPaymentScreenshot: true,
		Confidence:          0.95,
		Amount:              decp(3000),
	}, nil)

	_, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{URL: "https://img/1.png"})

	var mismatch *domain.AmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, decimal.NewFromInt(3000).Equal(mismatch.Provided))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_SubmitScreenshot_UnreadableAmountRejected(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.oracle.EXPECT().Extract(mock.Anything, mock.Anything).Return(&domain.ScreenshotAnalysis{
		IsPaymentScreenshot: true,
		Confidence:          0.8,
		SenderName:          "Alice",
	}, nil)

	res, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{URL: "https://img/1.png"})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrAmountUnreadable)
	assert.Equal(t, "validation", domain.Kind(err))
	d.bookings.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything)
}

func TestPaymentService_SubmitScreenshot_OracleFailure(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.oracle.EXPECT().Extract(mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrIntegration, errors.New("503")))

	_, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{URL: "https://img/1.png"})

	assert.Equal(t, "integration", domain.Kind(err))
}

func TestPaymentService_SubmitScreenshot_RequiresImage(t *testing.T) {
	d := newPaymentDeps(t)

	_, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_SubmitScreenshot_InactiveBooking(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusExpired} {
		t.Run(string(status), func(t *testing.T) {
			d := newPaymentDeps(t)

			d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(status), nil)

			_, err := d.svc.SubmitScreenshot(context.Background(), "b1", domain.ScreenshotInput{URL: "https://img/1.png"})

			assert.ErrorIs(t, err, domain.ErrBookingNotActive)
			d.oracle.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
		})
	}
}

func TestPaymentService_SubmitManualDetails_WithinTolerance(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	tr := d.expectSubmit(t)

	res, err := d.svc.SubmitManualDetails(context.Background(), "b1", domain.ManualPaymentInput{
		SenderName:    " Alice ",
		Amount:        "Rs. 4,998",
		TransactionID: "TX-9",
		SenderPhone:   "03001234567",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaiting, res.Booking.Status)
	require.NotNil(t, tr.Claim.Amount)
	assert.True(t, decimal.NewFromInt(4998).Equal(*tr.Claim.Amount))
	assert.Equal(t, "Alice", tr.Claim.SenderName)
	assert.Equal(t, domain.ClaimSourceManual, tr.Claim.Source)
	assert.Nil(t, tr.Claim.Confidence)
}

func TestPaymentService_SubmitManualDetails_SpaceGroupedAmount(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	tr := d.expectSubmit(t)

	_, err := d.svc.SubmitManualDetails(context.Background(), "b1", domain.ManualPaymentInput{
		SenderName: "Alice",
		Amount:     "5 000",
	})

	require.NoError(t, err)
	require.NotNil(t, tr.Claim.Amount)
	assert.True(t, decimal.NewFromInt(5000).Equal(*tr.Claim.Amount))
}

func TestPaymentService_SubmitManualDetails_AmountMismatch(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)

	_, err := d.svc.SubmitManualDetails(context.Background(), "b1", domain.ManualPaymentInput{
		SenderName: "Alice",
		Amount:     "4000",
	})

	require.Error(t, err)
	assert.EqualError(t, err, "amount mismatch: expected 5000, provided 4000")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_SubmitManualDetails_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   domain.ManualPaymentInput
	}{
		{"no sender", domain.ManualPaymentInput{Amount: "5000"}},
		{"no amount", domain.ManualPaymentInput{SenderName: "Alice"}},
		{"garbage amount", domain.ManualPaymentInput{SenderName: "Alice", Amount: "five thousand"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newPaymentDeps(t)

			_, err := d.svc.SubmitManualDetails(context.Background(), "b1", tt.in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPaymentService_Submit_LostRaceToExpiry(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.bookings.EXPECT().Transition(mock.Anything, mock.Anything).Return(nil, &domain.StatusError{
		BookingID: "b1", Current: domain.BookingStatusExpired, Err: domain.ErrStaleStatus,
	})

	_, err := d.svc.SubmitManualDetails(context.Background(), "b1", domain.ManualPaymentInput{
		SenderName: "Alice",
		Amount:     "5000",
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
	assert.Contains(t, err.Error(), "expired")
}

func TestPaymentService_Submit_NotificationFailureKeepsTransition(t *testing.T) {
	d := newPaymentDeps(t)

	waiting := testBooking(domain.BookingStatusWaiting)
	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending), nil)
	d.bookings.EXPECT().Transition(mock.Anything, mock.Anything).Return(waiting, nil)
	d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).
		Return(domain.Delivery{Channel: domain.ChannelNone, Err: domain.ErrNoChannel})

	res, err := d.svc.SubmitManualDetails(context.Background(), "b1", domain.ManualPaymentInput{
		SenderName: "Alice",
		Amount:     "5000",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaiting, res.Booking.Status)
	assert.ErrorIs(t, res.AdminDelivery.Err, domain.ErrNoChannel)
}

func TestPaymentService_Verify(t *testing.T) {
	d := newPaymentDeps(t)

	confirmed := testBooking(domain.BookingStatusConfirmed)
	confirmed.VerifiedBy = "admin"
	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusWaiting), nil)
	d.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.To == domain.BookingStatusConfirmed && tr.VerifiedBy == "admin" && tr.Notes == "ok"
	})).Return(confirmed, nil)
	d.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Event == domain.EventPaymentConfirmed && n.Audience == domain.AudienceCustomer && n.Actor == "admin"
	})).Return(domain.Delivery{Delivered: true, Channel: domain.ChannelMessaging})

	res, err := d.svc.Verify(context.Background(), "b1", "admin", " ok ")

	require.NoError(t, err)
	assert.False(t, res.AlreadyConfirmed)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Booking.Status)
	assert.True(t, res.CustomerDelivery.Delivered)
}

func TestPaymentService_Verify_AlreadyConfirmedIsIdempotent(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusConfirmed), nil)

	res, err := d.svc.Verify(context.Background(), "b1", "admin", "")

	require.NoError(t, err)
	assert.True(t, res.AlreadyConfirmed)
	d.bookings.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything)
	d.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestPaymentService_Verify_LostRaceToAnotherConfirm(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusWaiting), nil).Once()
	d.bookings.EXPECT().Transition(mock.Anything, mock.Anything).Return(nil, &domain.StatusError{
		BookingID: "b1", Current: domain.BookingStatusConfirmed, Err: domain.ErrStaleStatus,
	})
	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusConfirmed), nil).Once()

	res, err := d.svc.Verify(context.Background(), "b1", "admin2", "")

	require.NoError(t, err)
	assert.True(t, res.AlreadyConfirmed)
	d.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestPaymentService_Verify_Expired(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusExpired), nil)

	_, err := d.svc.Verify(context.Background(), "b1", "admin", "")

	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
	assert.Equal(t, "conflict", domain.Kind(err))
}

func TestPaymentService_Verify_RequiresVerifier(t *testing.T) {
	d := newPaymentDeps(t)

	_, err := d.svc.Verify(context.Background(), "b1", " ", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_Reject(t *testing.T) {
	d := newPaymentDeps(t)

	pending := testBooking(domain.BookingStatusPending)
	pending.Reason = "amount unclear"
	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusWaiting), nil)
	d.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.To == domain.BookingStatusPending && tr.Reason == "amount unclear" && tr.RejectedBy == "admin"
	})).Return(pending, nil)
	d.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Event == domain.EventPaymentRejected && n.Reason == "amount unclear"
	})).Return(domain.Delivery{Delivered: true, Channel: domain.ChannelWeb})

	res, err := d.svc.Reject(context.Background(), "b1", "amount unclear", "admin")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, res.Booking.Status)
	assert.Equal(t, "amount unclear", res.Booking.Reason)
}

func TestPaymentService_Reject_Validation(t *testing.T) {
	d := newPaymentDeps(t)

	_, err := d.svc.Reject(context.Background(), "b1", "", "admin")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = d.svc.Reject(context.Background(), "b1", "bad", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_Reject_TerminalBooking(t *testing.T) {
	d := newPaymentDeps(t)

	d.bookings.EXPECT().Get(mock.Anything, "b1").Return(testBooking(domain.BookingStatusConfirmed), nil)

	_, err := d.svc.Reject(context.Background(), "b1", "late", "admin")

	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
}
