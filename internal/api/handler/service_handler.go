package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// ServiceHandler exposes the billable service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type createServiceRequest struct {
	Name        string  `json:"name"  validate:"required"`
	Unit        string  `json:"unit"  validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
}

type updateServiceRequest struct {
	Name        *string `json:"name"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type changePriceRequest struct {
	Price float64 `json:"price" validate:"gte=0"`
}

type serviceListResponse struct {
	Data       []*domain.Service  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List returns a page of catalog services.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        name       query  string  false  "Partial name match"
// @Param        unit       query  string  false  "Partial unit match"
// @Param        status     query  string  false  "Status filter"
// @Param        min_price  query  number  false  "Minimum price"
// @Param        max_price  query  number  false  "Maximum price"
// @Success      200  {object}  serviceListResponse
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	filter := ports.ServiceListFilter{
		Name:     c.QueryParam("name"),
		Unit:     c.QueryParam("unit"),
		MinPrice: optFloat(c, "min_price"),
		MaxPrice: optFloat(c, "max_price"),
		Page:     page,
		Limit:    limit,
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := domain.ServiceStatus(raw)
		filter.Status = &status
	}

	result, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceListResponse{
		Data:       result.Items,
		Pagination: pagination(result.Total, result.Page, result.Limit),
	})
}

// Get returns one catalog service.
//
// @Summary      Get service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Service ID"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Create adds a catalog service.
//
// @Summary      Create service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}

	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.catalog.Create(c.Request().Context(), ports.CreateServiceInput{
		Name:        req.Name,
		Unit:        req.Unit,
		Price:       req.Price,
		Description: req.Description,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update changes a catalog service.
//
// @Summary      Update service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                   true  "Service ID"
// @Param        body  body  updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateServiceInput{
		ID:          id,
		Name:        req.Name,
		Unit:        req.Unit,
		Description: req.Description,
		ActorID:     actorID,
	}
	if req.Status != nil {
		status := domain.ServiceStatus(*req.Status)
		input.Status = &status
	}

	svc, err := h.catalog.Update(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// ChangePrice sets a new price without touching the rest of the record.
//
// @Summary      Change service price
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Service ID"
// @Param        body  body  changePriceRequest  true  "New price"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  errorResponse
// @Router       /services/{id}/price [put]
func (h *ServiceHandler) ChangePrice(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req changePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.catalog.ChangePrice(c.Request().Context(), id, req.Price, actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete removes a catalog service never billed to a booking.
//
// @Summary      Delete service
// @Tags         services
// @Security     BearerAuth
// @Param        id  path  int  true  "Service ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
