package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/handler/dto"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/scheduler"
	"github.com/wb-go/wbf/ginext"
)

const (
	maxScreenshotBytes = 10 << 20

	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type ReservationSvc interface {
	Reserve(ctx context.Context, in domain.ReserveInput) (*domain.ReserveResult, error)
	CheckAvailability(ctx context.Context, propertyID string, date time.Time, shift domain.Shift) (*domain.Availability, error)
	Get(ctx context.Context, ref string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type PaymentSvc interface {
	SubmitScreenshot(ctx context.Context, bookingRef string, in domain.ScreenshotInput) (*domain.SubmissionResult, error)
	SubmitManualDetails(ctx context.Context, bookingRef string, in domain.ManualPaymentInput) (*domain.SubmissionResult, error)
	Verify(ctx context.Context, bookingRef, verifiedBy, notes string) (*domain.VerifyResult, error)
	Reject(ctx context.Context, bookingRef, reason, rejectedBy string) (*domain.RejectResult, error)
}

type SweeperSvc interface {
	RunOnce(ctx context.Context) (*scheduler.SweepReport, error)
	Status() scheduler.Status
}

// HistorySvc serves the web channel: the client polls its session history.
type HistorySvc interface {
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Message, error)
}

type Handler struct {
	reservationService ReservationSvc
	paymentService     PaymentSvc
	sweeper            SweeperSvc
	history            HistorySvc
}

func NewHandler(reservationService ReservationSvc, paymentService PaymentSvc, sweeper SweeperSvc, history HistorySvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		paymentService:     paymentService,
		sweeper:            sweeper,
		history:            history,
	}
}

// Bookings

func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_date format, expected YYYY-MM-DD",
		})
		return
	}

	res, err := h.reservationService.Reserve(c.Request.Context(), domain.ReserveInput{
		UserID:        req.UserID,
		PropertyID:    req.PropertyID,
		Date:          date,
		Shift:         domain.Shift(req.Shift),
		BuyerName:     req.BuyerName,
		BuyerIDNumber: req.BuyerIDNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReserveResponse{
		Booking: dto.ToBookingResponse(res.Booking),
		Message: res.Message,
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.reservationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, q.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	av, err := h.reservationService.CheckAvailability(c.Request.Context(), q.PropertyID, date, domain.Shift(q.Shift))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(av))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	bookings, err := h.reservationService.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// Payments

func (h *Handler) SubmitScreenshot(c *ginext.Context) {
	var in domain.ScreenshotInput

	if c.ContentType() == "multipart/form-data" {
		file, err := c.FormFile("screenshot")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "multipart field \"screenshot\" is required"})
			return
		}
		if file.Size > maxScreenshotBytes {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "screenshot is too large"})
			return
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read screenshot"})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxScreenshotBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read screenshot"})
			return
		}
		in.Data = data
		in.Filename = file.Filename
	} else {
		var req dto.ScreenshotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		in.URL = req.URL
	}

	res, err := h.paymentService.SubmitScreenshot(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSubmissionResponse(res))
}

func (h *Handler) SubmitManualDetails(c *ginext.Context) {
	var req dto.ManualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.paymentService.SubmitManualDetails(c.Request.Context(), c.Param("id"), domain.ManualPaymentInput{
		SenderName:    req.SenderName,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		SenderPhone:   req.SenderPhone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSubmissionResponse(res))
}

func toSubmissionResponse(res *domain.SubmissionResult) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		Booking:          dto.ToBookingResponse(res.Booking),
		AdminDelivery:    dto.ToDeliveryResponse(res.AdminDelivery),
		CustomerDelivery: dto.ToDeliveryResponse(res.CustomerDelivery),
	}
}

// Admin

func (h *Handler) VerifyPayment(c *ginext.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.paymentService.Verify(c.Request.Context(), c.Param("id"), req.VerifiedBy, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.VerifyResponse{
		Booking:          dto.ToBookingResponse(res.Booking),
		AlreadyConfirmed: res.AlreadyConfirmed,
	}
	if !res.AlreadyConfirmed {
		d := dto.ToDeliveryResponse(res.CustomerDelivery)
		resp.CustomerDelivery = &d
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RejectPayment(c *ginext.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.paymentService.Reject(c.Request.Context(), c.Param("id"), req.Reason, req.RejectedBy)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RejectResponse{
		Booking:          dto.ToBookingResponse(res.Booking),
		CustomerDelivery: dto.ToDeliveryResponse(res.CustomerDelivery),
	})
}

func (h *Handler) RunSweep(c *ginext.Context) {
	report, err := h.sweeper.RunOnce(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) SweeperStatus(c *ginext.Context) {
	c.JSON(http.StatusOK, h.sweeper.Status())
}

// Sessions

func (h *Handler) SessionMessages(c *ginext.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	msgs, err := h.history.ListBySession(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(msgs))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	kind := domain.Kind(err)
	resp := dto.ErrorResponse{Error: err.Error(), Kind: kind}

	var mismatch *domain.AmountMismatchError
	if errors.As(err, &mismatch) {
		resp.Expected = mismatch.Expected.String()
		resp.Provided = mismatch.Provided.String()
	}

	switch kind {
	case "validation":
		c.JSON(http.StatusBadRequest, resp)
	case "not_found":
		c.JSON(http.StatusNotFound, resp)
	case "conflict":
		c.JSON(http.StatusConflict, resp)
	case "integration":
		c.JSON(http.StatusBadGateway, resp)
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
