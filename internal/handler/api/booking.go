package api

import (
	"errors"
	"net/http"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireAuth guarantees the user context exists, so hitting this means the
// route was wired without it.
var errMissingUserContext = errs.New("authenticated user missing from context")

type BookingHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingQueries queries.BookingQueries, bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary Create booking
// @Description Book a room for a half-open date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, booking.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
		case errors.Is(err, booking.ErrTooManyGuests):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest count exceeds room capacity", nil)
		case errors.Is(err, booking.ErrRoomUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room is unavailable for the requested dates", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID; guests see only their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actorID, actorRole, id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListOwnBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Cancel booking
// @Description Cancel a booking, releasing its dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingCommands.CancelBooking(c.Request.Context(), actorID, actorRole, id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking can no longer be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List all bookings
// @Description Staff listing of all bookings with optional status filter
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status" Enums(pending, paid, cancelled)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		if _, err := booking.NewStatus(s); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking status", nil)
			return
		}
		status = &s
	}

	views, err := h.bookingQueries.ListAll(c.Request.Context(), status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func actorFromContext(c *gin.Context) (uuid.UUID, user.Role, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	actorRole, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return actorID, actorRole, true
}
