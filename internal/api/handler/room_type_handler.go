package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// RoomTypeHandler exposes rate-card CRUD.
type RoomTypeHandler struct {
	roomTypes ports.RoomTypeService
}

func NewRoomTypeHandler(roomTypes ports.RoomTypeService) *RoomTypeHandler {
	return &RoomTypeHandler{roomTypes: roomTypes}
}

type createRoomTypeRequest struct {
	Code          string  `json:"code"            validate:"required"`
	Name          string  `json:"name"            validate:"required"`
	BaseOccupancy int     `json:"base_occupancy"  validate:"required,gt=0"`
	MaxOccupancy  int     `json:"max_occupancy"   validate:"required,gt=0"`
	BaseRate      float64 `json:"base_rate"       validate:"gte=0"`
	HourRate      float64 `json:"hour_rate"       validate:"gte=0"`
	ExtraAdultFee float64 `json:"extra_adult_fee" validate:"gte=0"`
	ExtraChildFee float64 `json:"extra_child_fee" validate:"gte=0"`
	Description   string  `json:"description"`
}

type updateRoomTypeRequest struct {
	Code          *string  `json:"code"`
	Name          *string  `json:"name"`
	BaseOccupancy *int     `json:"base_occupancy"  validate:"omitempty,gt=0"`
	MaxOccupancy  *int     `json:"max_occupancy"   validate:"omitempty,gt=0"`
	BaseRate      *float64 `json:"base_rate"       validate:"omitempty,gte=0"`
	HourRate      *float64 `json:"hour_rate"       validate:"omitempty,gte=0"`
	ExtraAdultFee *float64 `json:"extra_adult_fee" validate:"omitempty,gte=0"`
	ExtraChildFee *float64 `json:"extra_child_fee" validate:"omitempty,gte=0"`
	Description   *string  `json:"description"`
}

type roomTypeListResponse struct {
	Data       []*domain.RoomType `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List returns a page of rate cards.
//
// @Summary      List room types
// @Tags         room-types
// @Produce      json
// @Security     BearerAuth
// @Param        code           query  string  false  "Partial code match"
// @Param        name           query  string  false  "Partial name match"
// @Param        min_base_rate  query  number  false  "Minimum base rate"
// @Param        max_base_rate  query  number  false  "Maximum base rate"
// @Success      200  {object}  roomTypeListResponse
// @Router       /room-types [get]
func (h *RoomTypeHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.roomTypes.List(c.Request().Context(), ports.RoomTypeListFilter{
		Code:        c.QueryParam("code"),
		Name:        c.QueryParam("name"),
		MinBaseRate: optFloat(c, "min_base_rate"),
		MaxBaseRate: optFloat(c, "max_base_rate"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomTypeListResponse{
		Data:       result.Items,
		Pagination: pagination(result.Total, result.Page, result.Limit),
	})
}

// Get returns one rate card.
//
// @Summary      Get room type
// @Tags         room-types
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Room type ID"
// @Success      200  {object}  domain.RoomType
// @Failure      404  {object}  errorResponse
// @Router       /room-types/{id} [get]
func (h *RoomTypeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	rt, err := h.roomTypes.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

// Create adds a rate card.
//
// @Summary      Create room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomTypeRequest  true  "Rate card"
// @Success      201   {object}  domain.RoomType
// @Failure      409   {object}  errorResponse
// @Router       /room-types [post]
func (h *RoomTypeHandler) Create(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}

	var req createRoomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rt, err := h.roomTypes.Create(c.Request().Context(), ports.CreateRoomTypeInput{
		Code:          req.Code,
		Name:          req.Name,
		BaseOccupancy: req.BaseOccupancy,
		MaxOccupancy:  req.MaxOccupancy,
		BaseRate:      req.BaseRate,
		HourRate:      req.HourRate,
		ExtraAdultFee: req.ExtraAdultFee,
		ExtraChildFee: req.ExtraChildFee,
		Description:   req.Description,
		ActorID:       actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rt)
}

// Update changes a rate card.
//
// @Summary      Update room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "Room type ID"
// @Param        body  body  updateRoomTypeRequest  true  "Fields to change"
// @Success      200   {object}  domain.RoomType
// @Failure      404   {object}  errorResponse
// @Router       /room-types/{id} [put]
func (h *RoomTypeHandler) Update(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRoomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rt, err := h.roomTypes.Update(c.Request().Context(), ports.UpdateRoomTypeInput{
		ID:            id,
		Code:          req.Code,
		Name:          req.Name,
		BaseOccupancy: req.BaseOccupancy,
		MaxOccupancy:  req.MaxOccupancy,
		BaseRate:      req.BaseRate,
		HourRate:      req.HourRate,
		ExtraAdultFee: req.ExtraAdultFee,
		ExtraChildFee: req.ExtraChildFee,
		Description:   req.Description,
		ActorID:       actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

// Delete removes an unused rate card.
//
// @Summary      Delete room type
// @Tags         room-types
// @Security     BearerAuth
// @Param        id  path  int  true  "Room type ID"
// @Success      204
// @Failure      409  {object}  errorResponse
// @Router       /room-types/{id} [delete]
func (h *RoomTypeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.roomTypes.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
