package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// RoomHandler exposes room CRUD plus the status and availability endpoints
// used by the front desk and housekeeping.
type RoomHandler struct {
	rooms ports.RoomService
}

func NewRoomHandler(rooms ports.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

type createRoomRequest struct {
	Name        string `json:"name"         validate:"required"`
	RoomTypeID  int64  `json:"room_type_id" validate:"required,gt=0"`
	Description string `json:"description"`
}

type updateRoomRequest struct {
	Name        *string `json:"name"`
	RoomTypeID  *int64  `json:"room_type_id" validate:"omitempty,gt=0"`
	Description *string `json:"description"`
}

type setRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available Occupied OutOfService"`
}

type setHousekeepingRequest struct {
	Status string `json:"status" validate:"required,oneof=Clean Dirty Inspected OutOfOrder"`
}

type roomListResponse struct {
	Data       []*domain.Room     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type availableRoomResponse struct {
	Room     domain.Room     `json:"room"`
	RoomType domain.RoomType `json:"room_type"`
}

// List returns a page of rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        name          query  string  false  "Partial name match"
// @Param        room_type_id  query  int     false  "Room type filter"
// @Param        status        query  string  false  "Room status filter"
// @Param        housekeeping  query  string  false  "Housekeeping status filter"
// @Success      200  {object}  roomListResponse
// @Router       /rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	filter := ports.RoomListFilter{
		Name:       c.QueryParam("name"),
		RoomTypeID: optInt64(c, "room_type_id"),
		Page:       page,
		Limit:      limit,
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := domain.RoomStatus(raw)
		filter.Status = &status
	}
	if raw := c.QueryParam("housekeeping"); raw != "" {
		status := domain.HousekeepingStatus(raw)
		filter.HousekeepingStatus = &status
	}

	result, err := h.rooms.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomListResponse{
		Data:       result.Items,
		Pagination: pagination(result.Total, result.Page, result.Limit),
	})
}

// Available lists rooms free of overlapping open bookings for a window.
//
// @Summary      Room availability
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        from           query  string  false  "Window start (RFC 3339 or date)"
// @Param        to             query  string  false  "Window end"
// @Param        room_id        query  int     false  "Limit to one room"
// @Param        room_type_id   query  int     false  "Limit to a room type"
// @Param        occupancy      query  int     false  "Required occupancy"
// @Param        min_base_rate  query  number  false  "Minimum base rate"
// @Param        max_base_rate  query  number  false  "Maximum base rate"
// @Success      200  {array}  availableRoomResponse
// @Router       /rooms/available [get]
func (h *RoomHandler) Available(c echo.Context) error {
	rooms, err := h.rooms.Available(c.Request().Context(), ports.AvailabilityFilter{
		From:        optTime(c, "from"),
		To:          optTime(c, "to"),
		RoomID:      optInt64(c, "room_id"),
		RoomTypeID:  optInt64(c, "room_type_id"),
		Occupancy:   optInt(c, "occupancy"),
		MinBaseRate: optFloat(c, "min_base_rate"),
		MaxBaseRate: optFloat(c, "max_base_rate"),
	})
	if err != nil {
		return err
	}

	out := make([]availableRoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, availableRoomResponse{Room: r.Room, RoomType: r.RoomType})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one room.
//
// @Summary      Get room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Room ID"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	room, err := h.rooms.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Create adds a room.
//
// @Summary      Create room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      409   {object}  errorResponse
// @Router       /rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}

	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.rooms.Create(c.Request().Context(), ports.CreateRoomInput{
		Name:        req.Name,
		RoomTypeID:  req.RoomTypeID,
		Description: req.Description,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Update changes a room.
//
// @Summary      Update room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "Room ID"
// @Param        body  body  updateRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      404   {object}  errorResponse
// @Router       /rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.rooms.Update(c.Request().Context(), ports.UpdateRoomInput{
		ID:          id,
		Name:        req.Name,
		RoomTypeID:  req.RoomTypeID,
		Description: req.Description,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// SetStatus changes the front-desk status of a room.
//
// @Summary      Set room status
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                   true  "Room ID"
// @Param        body  body  setRoomStatusRequest  true  "New status"
// @Success      200   {object}  domain.Room
// @Router       /rooms/{id}/status [put]
func (h *RoomHandler) SetStatus(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req setRoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.rooms.SetStatus(c.Request().Context(), id, domain.RoomStatus(req.Status), actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// SetHousekeeping changes the cleaning status of a room.
//
// @Summary      Set housekeeping status
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                     true  "Room ID"
// @Param        body  body  setHousekeepingRequest  true  "New status"
// @Success      200   {object}  domain.Room
// @Router       /rooms/{id}/housekeeping [put]
func (h *RoomHandler) SetHousekeeping(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req setHousekeepingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.rooms.SetHousekeeping(c.Request().Context(), id, domain.HousekeepingStatus(req.Status), actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete removes a room with no booking history.
//
// @Summary      Delete room
// @Tags         rooms
// @Security     BearerAuth
// @Param        id  path  int  true  "Room ID"
// @Success      204
// @Failure      409  {object}  errorResponse
// @Router       /rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.rooms.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
