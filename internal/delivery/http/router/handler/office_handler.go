package handler

import (
	"net/http"

	"istiqdam/internal/delivery/http/response"
	"istiqdam/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfficeHandler serves the public office directory.
type OfficeHandler struct {
	officeUC  usecase.OfficeUsecase
	catalogUC usecase.CatalogUsecase
}

// NewOfficeHandler is the constructor for OfficeHandler, injected by Fx.
func NewOfficeHandler(officeUC usecase.OfficeUsecase, catalogUC usecase.CatalogUsecase) *OfficeHandler {
	return &OfficeHandler{officeUC: officeUC, catalogUC: catalogUC}
}

// ListOffices returns every office in the directory.
func (h *OfficeHandler) ListOffices(c echo.Context) error {
	offices, err := h.officeUC.ListOffices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offices, "Offices retrieved successfully")
}

// GetOffice returns a single office by ID.
func (h *OfficeHandler) GetOffice(c echo.Context) error {
	officeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid office ID")
	}

	office, err := h.officeUC.GetOffice(c.Request().Context(), officeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, office, "Office retrieved successfully")
}

// ListOfficeWorkers returns the workers listed by a single office.
func (h *OfficeHandler) ListOfficeWorkers(c echo.Context) error {
	officeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid office ID")
	}

	// Resolve the office first so an unknown ID is a 404, not an empty list.
	if _, err := h.officeUC.GetOffice(c.Request().Context(), officeID); err != nil {
		return errors.WithStack(err)
	}

	workers, err := h.catalogUC.ListOfficeWorkers(c.Request().Context(), officeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workers, "Workers retrieved successfully")
}
