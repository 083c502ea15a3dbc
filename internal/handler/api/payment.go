package api

import (
	"errors"
	"net/http"

	"hotel-booking/internal/domain/payment"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentQueries  queries.PaymentQueries
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentQueries queries.PaymentQueries, paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentQueries:  paymentQueries,
		paymentCommands: paymentCommands,
	}
}

// @Summary Pay booking
// @Description Settle a pending booking through the mock provider
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.PayBookingRequest true "Payment request"
// @Success 200 {object} resdto.PayResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/pay [post]
func (h *PaymentHandler) PayBooking(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.paymentCommands.Pay(c.Request.Context(), actorID, actorRole, bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrUnsupportedMethod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported payment method", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrBookingNotPayable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking can no longer be paid", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayResult(result))
}

// @Summary Get payment
// @Description Get the payment recorded for a booking
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payment [get]
func (h *PaymentHandler) GetBookingPayment(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.paymentQueries.GetByBookingID(c.Request.Context(), actorID, actorRole, bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrPaymentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}
