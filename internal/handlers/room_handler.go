package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roomstay/server/internal/helpers"
	"github.com/roomstay/server/internal/models"
	"github.com/roomstay/server/internal/services"
)

func CreateRoomHandler(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hostId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		if !claims.IsHost() && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only users with host role can create rooms"))
			return
		}

		var room models.Room
		if err := c.ShouldBindJSON(&room); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		createdRoom, err := r.CreateRoom(c.Request.Context(), &room, hostId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdRoom, "Room created successfully"))
	}
}

func ListRooms(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := c.DefaultQuery("limit", "10")
		offset := c.DefaultQuery("offset", "0")
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
			return
		}

		rooms, total, err := r.ListRooms(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(rooms, page, limitInt, total))
	}
}

func GetRoomByID(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := helpers.StringTrim(c.Param("id"))
		if roomID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("room ID is required"))
			return
		}

		parsedId, err := uuid.Parse(roomID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid room ID format"))
			return
		}

		room, err := r.GetRoomByID(c.Request.Context(), parsedId)
		if err != nil {
			if errors.Is(err, models.ErrRoomNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("room not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(room, ""))
	}
}
