package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelUseCase usecase.HotelUseCase
}

func NewHotelHandler(hotelUseCase usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{
		hotelUseCase: hotelUseCase,
	}
}

// @Summary List hotels
// @Description List hotels with their rooms
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HotelResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels [get]
func (h *HotelHandler) GetHotels(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	hotels, err := h.hotelUseCase.GetHotels(c.Request.Context(), userID)
	if err != nil {
		h.abortWithHotelError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRMs(hotels))
}

// @Summary Get hotel
// @Description Get a hotel with its rooms
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotelId} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil || hotelID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("hotelId must be a positive number"), "Invalid hotel ID", nil)
		return
	}

	hotel, err := h.hotelUseCase.GetHotelWithRooms(c.Request.Context(), userID, hotelID)
	if err != nil {
		h.abortWithHotelError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRM(hotel))
}

func (h *HotelHandler) abortWithHotelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEnrollmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Enrollment not found", nil)
	case errors.Is(err, usecase.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errors.Is(err, usecase.ErrCannotBookRoom):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Ticket does not allow listing hotels", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
