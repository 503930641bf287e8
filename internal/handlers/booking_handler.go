package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roomstay/server/internal/helpers"
	"github.com/roomstay/server/internal/models"
	"github.com/roomstay/server/internal/services"
)

func currentUserID(c *gin.Context) (uuid.UUID, *helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return uuid.Nil, nil, false
	}

	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return uuid.Nil, nil, false
	}

	userId, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
		return uuid.Nil, nil, false
	}

	return userId, claims, true
}

// parseAsOf reads the optional as_of query param so clients (and tests) can
// pin the evaluation instant; zero means "now" down in the service.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Time{}, true
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid as_of parameter, expected RFC3339"))
		return time.Time{}, false
	}
	return asOf, true
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		var req struct {
			RoomId      string    `json:"room_id" binding:"required"`
			BookingDate time.Time `json:"booking_date" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		roomId, err := uuid.Parse(helpers.StringTrim(req.RoomId))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid room ID format"))
			return
		}

		booking, err := b.CreateBooking(c.Request.Context(), userId, roomId, req.BookingDate)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnauthenticated):
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			case errors.Is(err, models.ErrInvalidBookingDate):
				c.JSON(http.StatusBadRequest, models.ErrorResponse("booking date is required"))
			default:
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			}
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created successfully"))
	}
}

func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		asOf, ok := parseAsOf(c)
		if !ok {
			return
		}

		list, err := b.ListBookings(c.Request.Context(), userId, asOf)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(list, ""))
	}
}

func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		bookingId, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		asOf, ok := parseAsOf(c)
		if !ok {
			return
		}

		booking, err := b.GetBooking(c.Request.Context(), bookingId)
		if err != nil {
			if errors.Is(err, models.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		if booking.UserId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you can only cancel your own bookings"))
			return
		}

		if err := b.CancelBooking(c.Request.Context(), booking, asOf); err != nil {
			switch {
			case errors.Is(err, models.ErrCancellationClosed):
				c.JSON(http.StatusConflict, models.ErrorResponse("bookings can only be cancelled before the booking date"))
			case errors.Is(err, models.ErrBookingNotFound):
				// Deleted between the lookup and the delete; already done.
				c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			default:
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			}
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "booking cancelled successfully"))
	}
}
