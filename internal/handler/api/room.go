package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomQueries  queries.RoomQueries
	roomCommands commands.RoomCommands
}

func NewRoomHandler(roomQueries queries.RoomQueries, roomCommands commands.RoomCommands) *RoomHandler {
	return &RoomHandler{
		roomQueries:  roomQueries,
		roomCommands: roomCommands,
	}
}

// @Summary List rooms
// @Description List the room catalog with optional type and capacity filters
// @Tags rooms
// @Produce json
// @Param room_type query string false "Room type" Enums(single, double, suite, family)
// @Param min_guests query int false "Minimum guest capacity"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	filters, err := parseRoomFilters(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room filter", nil)
		return
	}

	views, err := h.roomQueries.List(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidRoomFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get a room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Available rooms
// @Description List rooms free for the whole half-open date range
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (2006-01-02)"
// @Param check_out query string true "Check-out date (2006-01-02)"
// @Param room_type query string false "Room type" Enums(single, double, suite, family)
// @Param min_guests query int false "Minimum guest capacity"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/available [get]
func (h *RoomHandler) AvailableRooms(c *gin.Context) {
	checkIn, err := time.Parse(time.DateOnly, c.Query("check_in"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "check_in must be a date like 2006-01-02", nil)
		return
	}
	checkOut, err := time.Parse(time.DateOnly, c.Query("check_out"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "check_out must be a date like 2006-01-02", nil)
		return
	}

	filters, err := parseRoomFilters(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room filter", nil)
		return
	}

	views, err := h.roomQueries.Available(c.Request.Context(), checkIn, checkOut, filters)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
		case errors.Is(err, queries.ErrInvalidRoomFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room filter", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Create room
// @Description Add a room to the catalog
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.roomCommands.CreateRoom(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateRoomNumber) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Room number already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Replace a room's catalog attributes
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.roomCommands.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrDuplicateRoomNumber):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room number already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func parseRoomFilters(c *gin.Context) (queries.RoomFilters, error) {
	var filters queries.RoomFilters

	if roomType := c.Query("room_type"); roomType != "" {
		filters.RoomType = &roomType
	}
	if minGuestsStr := c.Query("min_guests"); minGuestsStr != "" {
		minGuests, err := strconv.Atoi(minGuestsStr)
		if err != nil {
			return queries.RoomFilters{}, err
		}
		filters.MinGuests = &minGuests
	}

	return filters, nil
}
