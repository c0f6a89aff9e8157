package handler

import (
	"context"
	"net/http"

	"istiqdam/internal/delivery/http/middleware"
	"istiqdam/internal/delivery/http/response"
	"istiqdam/internal/domain/entity"
	"istiqdam/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateRequestInput is the payload for opening a reservation request.
type CreateRequestInput struct {
	WorkerID uuid.UUID `json:"worker_id" validate:"required"`
}

// ReservationHandler serves the reservation request lifecycle for both sides
// of the marketplace.
type ReservationHandler struct {
	uc usecase.ReservationUsecase
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// CreateRequest opens a pending request for a worker on behalf of the
// authenticated customer.
func (h *ReservationHandler) CreateRequest(c echo.Context) error {
	customerID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	var input CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), customerID, input.WorkerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Reservation request created successfully")
}

// ListMyRequests returns the authenticated customer's requests.
func (h *ReservationHandler) ListMyRequests(c echo.Context) error {
	customerID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	requests, err := h.uc.RequestsByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// CancelRequest cancels a pending request on behalf of the requesting customer.
func (h *ReservationHandler) CancelRequest(c echo.Context) error {
	customerID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	request, err := h.uc.Cancel(c.Request().Context(), customerID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Reservation request cancelled successfully")
}

// ListOfficeRequests returns the acting office's incoming requests.
func (h *ReservationHandler) ListOfficeRequests(c echo.Context) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	requests, err := h.uc.RequestsByOffice(c.Request().Context(), officeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// ApproveRequest approves a pending request on behalf of the owning office.
func (h *ReservationHandler) ApproveRequest(c echo.Context) error {
	return h.officeTransition(c, h.uc.Approve, "Reservation request approved successfully")
}

// RejectRequest rejects a pending request on behalf of the owning office.
func (h *ReservationHandler) RejectRequest(c echo.Context) error {
	return h.officeTransition(c, h.uc.Reject, "Reservation request rejected successfully")
}

// GetStatistics returns the acting office's dashboard aggregate.
func (h *ReservationHandler) GetStatistics(c echo.Context) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	stats, err := h.uc.OfficeStatistics(c.Request().Context(), officeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// officeTransition is shared plumbing for approve and reject: both resolve
// the acting office and the request ID, then run one usecase transition.
func (h *ReservationHandler) officeTransition(
	c echo.Context,
	op func(ctx context.Context, officeID, requestID uuid.UUID) (*entity.ReservationRequest, error),
	message string,
) error {
	officeID, ok := middleware.OfficeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Office ID missing from token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	request, err := op(c.Request().Context(), officeID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, message)
}
