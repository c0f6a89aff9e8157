package handler

import (
	"net/http"
	"strconv"

	"istiqdam/internal/delivery/http/middleware"
	"istiqdam/internal/delivery/http/response"
	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/service"
	"istiqdam/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkerHandler serves the public catalog search and the office-side
// catalog management endpoints.
type WorkerHandler struct {
	uc       usecase.CatalogUsecase
	importer service.WorkerImporter
}

// NewWorkerHandler is the constructor for WorkerHandler, injected by Fx.
func NewWorkerHandler(uc usecase.CatalogUsecase, importer service.WorkerImporter) *WorkerHandler {
	return &WorkerHandler{uc: uc, importer: importer}
}

// SearchWorkers filters the whole catalog by the query parameters. Every
// parameter is optional; specified ones are AND-ed together.
func (h *WorkerHandler) SearchWorkers(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	workers, err := h.uc.SearchWorkers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workers, "Workers retrieved successfully")
}

// GetWorker returns a single worker by ID.
func (h *WorkerHandler) GetWorker(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	worker, err := h.uc.GetWorker(c.Request().Context(), workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worker, "Worker retrieved successfully")
}

// CreateWorker lists a new worker under the acting office.
func (h *WorkerHandler) CreateWorker(c echo.Context) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	var input usecase.CreateWorkerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid worker input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	worker, err := h.uc.AddWorker(c.Request().Context(), officeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, worker, "Worker created successfully")
}

// UpdateWorker merges the provided fields into a worker owned by the acting office.
func (h *WorkerHandler) UpdateWorker(c echo.Context) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	var input usecase.UpdateWorkerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid worker input")
	}

	worker, err := h.uc.UpdateWorker(c.Request().Context(), officeID, workerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worker, "Worker updated successfully")
}

// DeleteWorker removes a worker owned by the acting office.
func (h *WorkerHandler) DeleteWorker(c echo.Context) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	if err := h.uc.DeleteWorker(c.Request().Context(), officeID, workerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Worker deleted"}, "Worker deleted successfully")
}

// ListMyWorkers returns the acting office's own catalog.
func (h *WorkerHandler) ListMyWorkers(c echo.Context) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	workers, err := h.uc.ListOfficeWorkers(c.Request().Context(), officeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workers, "Workers retrieved successfully")
}

// ImportWorkers bulk-adds workers from an uploaded CSV file. The importer
// coerces malformed cells to defaults, so a bad row never fails the upload.
func (h *WorkerHandler) ImportWorkers(c echo.Context) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing 'file' upload field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	rows, err := h.importer.Parse(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not parse the uploaded file")
	}

	workers, err := h.uc.ImportWorkers(c.Request().Context(), officeID, rows)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, workers, "Workers imported successfully")
}

// filterFromQuery builds a catalog filter from the search query parameters.
func filterFromQuery(c echo.Context) (entity.WorkerFilter, error) {
	filter := entity.WorkerFilter{
		NameQuery: c.QueryParam("q"),
		Religion:  c.QueryParam("religion"),
	}

	if raw := c.QueryParam("office_id"); raw != "" {
		officeID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid office_id")
		}
		filter.OfficeID = officeID
	}

	if raw := c.QueryParam("type"); raw != "" {
		workerType := entity.WorkerType(raw)
		if !workerType.IsValid() {
			return filter, errors.New("invalid worker type")
		}
		filter.Type = workerType
	}

	if raw := c.QueryParam("gulf_experience"); raw != "" {
		gulf := entity.GulfExperience(raw)
		if !gulf.IsValid() {
			return filter, errors.New("invalid gulf_experience, must be any, yes or no")
		}
		filter.GulfExperience = gulf
	}

	var err error
	if filter.MinAge, err = intQueryParam(c, "min_age"); err != nil {
		return filter, err
	}
	if filter.MaxAge, err = intQueryParam(c, "max_age"); err != nil {
		return filter, err
	}
	if filter.MinSalary, err = int64QueryParam(c, "min_salary"); err != nil {
		return filter, err
	}
	if filter.MaxSalary, err = int64QueryParam(c, "max_salary"); err != nil {
		return filter, err
	}

	return filter, nil
}

func intQueryParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}

	return &value, nil
}

func int64QueryParam(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}

	return &value, nil
}
