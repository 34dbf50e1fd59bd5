package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "room-booking-api/internal/handler/dto/request"
	resdto "room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Get booking
// @Description Get the caller's booking with its room
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	booking, err := h.bookingUseCase.GetBooking(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEnrollmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Enrollment not found", nil)
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, usecase.ErrCannotBookRoom):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Ticket does not allow booking a room", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(booking))
}

// @Summary Create booking
// @Description Book a room for the caller
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingRequest true "Target room"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if !req.Valid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("roomId must be a positive number"), "Invalid room ID", nil)
		return
	}

	bookingID, err := h.bookingUseCase.CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEnrollmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Enrollment not found", nil)
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrCannotBookRoom):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Ticket does not allow booking a room", nil)
		case errors.Is(err, usecase.ErrAlreadyBooked):
			httperr.AbortWithError(c, http.StatusForbidden, err, "User already has a booking", nil)
		case errors.Is(err, usecase.ErrNoVacancy):
			httperr.AbortWithError(c, http.StatusForbidden, err, "No vacancies available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CreateBookingResponse{BookingID: bookingID})
}

// @Summary Transfer booking
// @Description Move the caller's booking to another room
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingId path int true "Booking ID"
// @Param request body reqdto.BookingRequest true "Target room"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/{bookingId} [put]
func (h *BookingHandler) TransferBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if !req.Valid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("roomId must be a positive number"), "Invalid room ID", nil)
		return
	}

	// A malformed or non-positive path id is treated as an unknown booking,
	// before the service is consulted.
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID <= 0 {
		httperr.AbortWithError(c, http.StatusNotFound, usecase.ErrBookingNotFound, "Booking not found", nil)
		return
	}

	booking, err := h.bookingUseCase.TransferBooking(c.Request.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEnrollmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Enrollment not found", nil)
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrCannotBookRoom):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Ticket does not allow booking a room", nil)
		case errors.Is(err, usecase.ErrRoomOccupied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Room is not free", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(booking))
}
