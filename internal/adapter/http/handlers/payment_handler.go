package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "contractor_crm/internal/adapter/http/dto/request"
	response "contractor_crm/internal/adapter/http/dto/response"
	"contractor_crm/internal/usecase"
	"contractor_crm/internal/usecase/interfaces"
	"contractor_crm/pkg"
)

// PaymentHandler serves the payment ledger of one estimate.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	estimateID := c.Param("id")

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.RecordPayment(c.Request.Context(), estimateID, payload.ToCommand())
	if err != nil {
		log.Printf("[payment][handler] record failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(updated))
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	summary, err := h.usecase.GetPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(summary))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	updated, err := h.usecase.DeletePayment(c.Request.Context(), c.Param("id"), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Estimate was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment provider declined the charge", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
