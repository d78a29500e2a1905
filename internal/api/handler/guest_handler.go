package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// GuestHandler exposes guest profile CRUD and name search.
type GuestHandler struct {
	guests ports.GuestService
}

func NewGuestHandler(guests ports.GuestService) *GuestHandler {
	return &GuestHandler{guests: guests}
}

type createGuestRequest struct {
	Name        string  `json:"name"          validate:"required"`
	Gender      *string `json:"gender"        validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Nationality string  `json:"nationality"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"         validate:"omitempty,email"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
}

type updateGuestRequest struct {
	Name        *string `json:"name"`
	Gender      *string `json:"gender"        validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Nationality *string `json:"nationality"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"         validate:"omitempty,email"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

type guestListResponse struct {
	Data       []*domain.Guest    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List returns a page of guests.
//
// @Summary      List guests
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        name         query  string  false  "Partial name match"
// @Param        phone        query  string  false  "Partial phone match"
// @Param        email        query  string  false  "Partial email match"
// @Param        gender       query  string  false  "Gender filter"
// @Param        nationality  query  string  false  "Partial nationality match"
// @Success      200  {object}  guestListResponse
// @Router       /guests [get]
func (h *GuestHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	filter := ports.GuestListFilter{
		Name:        c.QueryParam("name"),
		Phone:       c.QueryParam("phone"),
		Email:       c.QueryParam("email"),
		Nationality: c.QueryParam("nationality"),
		Page:        page,
		Limit:       limit,
	}
	if raw := c.QueryParam("gender"); raw != "" {
		gender := domain.Gender(raw)
		filter.Gender = &gender
	}

	result, err := h.guests.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guestListResponse{
		Data:       result.Items,
		Pagination: pagination(result.Total, result.Page, result.Limit),
	})
}

// Search returns a short list of guests matching a name fragment, for
// front-desk autocomplete.
//
// @Summary      Search guests by name
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "Name fragment"
// @Success      200  {array}  domain.Guest
// @Router       /guests/search [get]
func (h *GuestHandler) Search(c echo.Context) error {
	guests, err := h.guests.SearchByName(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guests)
}

// Get returns one guest.
//
// @Summary      Get guest
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Guest ID"
// @Success      200  {object}  domain.Guest
// @Failure      404  {object}  errorResponse
// @Router       /guests/{id} [get]
func (h *GuestHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	guest, err := h.guests.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}

// Create adds a guest profile.
//
// @Summary      Create guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGuestRequest  true  "Guest details"
// @Success      201   {object}  domain.Guest
// @Failure      409   {object}  errorResponse
// @Router       /guests [post]
func (h *GuestHandler) Create(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}

	var req createGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.CreateGuestInput{
		Name:        req.Name,
		Nationality: req.Nationality,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Description: req.Description,
		ActorID:     actorID,
	}
	if req.Gender != nil {
		gender := domain.Gender(*req.Gender)
		input.Gender = &gender
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		input.DateOfBirth = &dob
	}

	guest, err := h.guests.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, guest)
}

// Update changes a guest profile.
//
// @Summary      Update guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Guest ID"
// @Param        body  body  updateGuestRequest  true  "Fields to change"
// @Success      200   {object}  domain.Guest
// @Failure      404   {object}  errorResponse
// @Router       /guests/{id} [put]
func (h *GuestHandler) Update(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateGuestInput{
		ID:          id,
		Name:        req.Name,
		Nationality: req.Nationality,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Description: req.Description,
		ActorID:     actorID,
	}
	if req.Gender != nil {
		gender := domain.Gender(*req.Gender)
		input.Gender = &gender
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		input.DateOfBirth = &dob
	}

	guest, err := h.guests.Update(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}

// Delete removes a guest with no booking history.
//
// @Summary      Delete guest
// @Tags         guests
// @Security     BearerAuth
// @Param        id  path  int  true  "Guest ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /guests/{id} [delete]
func (h *GuestHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.guests.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
