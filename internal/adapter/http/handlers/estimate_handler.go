package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "contractor_crm/internal/adapter/http/dto/request"
	response "contractor_crm/internal/adapter/http/dto/response"
	"contractor_crm/internal/domain/estimate"
	"contractor_crm/internal/usecase"
	"contractor_crm/internal/usecase/interfaces"
	"contractor_crm/pkg"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the contractor-facing estimate surface: CRUD, the
// financial settings, the line-item ledger and the revision history.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(created))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) UpdateFinancials(c *gin.Context) {
	var payload request.UpdateFinancialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateFinancials(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		log.Printf("[estimate][handler] financials update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) RevisionHistory(c *gin.Context) {
	groups, err := h.usecase.RevisionHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if groups == nil {
		groups = []estimate.DayGroup{}
	}
	c.JSON(http.StatusOK, groups)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidFinancials), errors.Is(err, usecase.ErrEmptyUpdate),
		errors.Is(err, usecase.ErrInvalidLineItem), errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrInvalidComment), errors.Is(err, usecase.ErrMissingRecipient),
		errors.Is(err, usecase.ErrInvalidCollectionID), errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, estimate.ErrInvalidScheduleMode), errors.Is(err, estimate.ErrInvalidReorder):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound), errors.Is(err, usecase.ErrLineItemNotFound),
		errors.Is(err, usecase.ErrTokenNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, estimate.ErrLineItemsLocked):
		return pkg.NewDomainErrorSimple("LINE_ITEMS_LOCKED", "Line items are locked after acceptance", http.StatusConflict)
	case errors.Is(err, estimate.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "State transition not allowed", http.StatusConflict)
	case errors.Is(err, estimate.ErrScheduleExceedsTotal):
		return pkg.NewDomainErrorSimple("SCHEDULE_EXCEEDS_TOTAL", "Payment schedule exceeds the estimate total", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPurchaseOrderExists):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_EXISTS", "A purchase order is already linked", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPurchasableItems):
		return pkg.NewDomainErrorSimple("NO_PURCHASABLE_ITEMS", "Estimate has no purchasable line items", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Estimate was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailDispatchFailed), errors.Is(err, usecase.ErrCatalogUnavailable),
		errors.Is(err, usecase.ErrProcurementFailed):
		return pkg.NewDomainErrorSimple("EXTERNAL_DEPENDENCY_FAILED", "An external dependency failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
