//go:build e2e

package booking_test

import (
	"net/http"
	"strconv"
	"testing"

	"room-booking-api/internal/handler/dto/response"
	"room-booking-api/tests/common/dbtest"
	"room-booking-api/tests/common/httptest"
	"room-booking-api/tests/e2e"
	"room-booking-api/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingURL = "/booking"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) token(userID int64) string {
	return helper.NewJWTTestHelper(s.Config.JWT).GenerateToken(s.T(), userID)
}

// =============================================================================
// TestGetBooking - Booking lookup API tests
// =============================================================================

func (s *BookingSuite) TestGetBooking() {
	s.Run("Error case: Request without token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: Expired token is rejected", func() {
		t := s.T()

		token := helper.NewJWTTestHelper(s.Config.JWT).CreateExpiredToken(t, 1)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: User without enrollment gets 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Enrollment not found")
	})

	s.Run("Error case: Unpaid ticket cannot view bookings", func() {
		t := s.T()

		enrollmentID := dbtest.CreateTestEnrollment(t, s.DB, 1)
		dbtest.CreateTestTicket(t, s.DB, enrollmentID, "reserved", false, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: Eligible user without a booking gets 404", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	s.Run("Normal case: Returns the booking with its room", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)
		bookingID := dbtest.CreateTestBooking(t, s.DB, 1, roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, s.token(1))

		var actual response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)

		expected := response.BookingResponse{
			ID:     bookingID,
			UserID: 1,
			RoomID: roomID,
			Room: &response.RoomResponse{
				ID:       roomID,
				Name:     "101",
				Capacity: 2,
				HotelID:  hotelID,
			},
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "CreatedAt", "UpdatedAt"),
			cmpopts.IgnoreFields(response.RoomResponse{}, "CreatedAt", "UpdatedAt"),
		}

		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: Eligible user books a room", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL,
			map[string]any{"roomId": roomID}, s.token(1))

		var created response.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.Positive(t, created.BookingID)

		// The new booking is visible through the lookup endpoint
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, s.token(1))
		var fetched response.BookingResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &fetched)
		require.Equal(t, created.BookingID, fetched.ID)
		require.Equal(t, roomID, fetched.RoomID)
	})

	s.Run("Error case: Second booking by the same user fails", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)
		dbtest.CreateTestBooking(t, s.DB, 1, roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL,
			map[string]any{"roomId": roomID}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: Full room cannot be booked", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "Single", 1)
		dbtest.CreateTestBooking(t, s.DB, 2, roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL,
			map[string]any{"roomId": roomID}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "No vacancies")
	})

	s.Run("Error case: Unknown room gets 404", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL,
			map[string]any{"roomId": 999}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	s.Run("Error case: Remote ticket cannot book", func() {
		t := s.T()

		enrollmentID := dbtest.CreateTestEnrollment(t, s.DB, 1)
		dbtest.CreateTestTicket(t, s.DB, enrollmentID, "paid", true, false)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL,
			map[string]any{"roomId": roomID}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: Invalid room id in body gets 400", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL,
			map[string]any{"roomId": 0}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestTransferBooking - Booking transfer API tests
// =============================================================================

func (s *BookingSuite) TestTransferBooking() {
	s.Run("Normal case: Booking moves to a free room", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomA := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)
		roomB := dbtest.CreateTestRoom(t, s.DB, hotelID, "102", 2)
		bookingID := dbtest.CreateTestBooking(t, s.DB, 1, roomA)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingURL+"/"+itoa(bookingID), map[string]any{"roomId": roomB}, s.token(1))

		var updated response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, bookingID, updated.ID)
		require.Equal(t, roomB, updated.RoomID)
	})

	s.Run("Error case: Occupied target room gets 403", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomA := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)
		roomB := dbtest.CreateTestRoom(t, s.DB, hotelID, "102", 2)
		bookingID := dbtest.CreateTestBooking(t, s.DB, 1, roomA)
		dbtest.CreateTestBooking(t, s.DB, 2, roomB)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingURL+"/"+itoa(bookingID), map[string]any{"roomId": roomB}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: Transfer into the current room gets 403", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomA := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)
		bookingID := dbtest.CreateTestBooking(t, s.DB, 1, roomA)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingURL+"/"+itoa(bookingID), map[string]any{"roomId": roomA}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: User without a booking gets 404", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomA := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingURL+"/1", map[string]any{"roomId": roomA}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	s.Run("Error case: Unknown target room gets 404", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomA := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)
		bookingID := dbtest.CreateTestBooking(t, s.DB, 1, roomA)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingURL+"/"+itoa(bookingID), map[string]any{"roomId": 999}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	s.Run("Error case: Malformed booking id in path gets 404", func() {
		t := s.T()

		dbtest.CreateEligibleUser(t, s.DB, 1)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Grand Plaza")
		roomA := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 2)
		dbtest.CreateTestBooking(t, s.DB, 1, roomA)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingURL+"/abc", map[string]any{"roomId": roomA}, s.token(1))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
