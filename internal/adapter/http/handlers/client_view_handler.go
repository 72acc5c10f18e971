package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "contractor_crm/internal/adapter/http/dto/request"
	response "contractor_crm/internal/adapter/http/dto/response"
	"contractor_crm/internal/usecase"
)

// ClientViewHandler serves the unauthenticated token surface the client's
// review link points at. Every route is keyed by the opaque email token.

type ClientViewHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewClientViewHandler(uc usecase.IEstimateUseCase) *ClientViewHandler {
	return &ClientViewHandler{usecase: uc}
}

func (h *ClientViewHandler) ViewEstimate(c *gin.Context) {
	e, err := h.usecase.ViewByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateForClient(e))
}

func (h *ClientViewHandler) RecordDecision(c *gin.Context) {
	var payload request.ClientDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	e, err := h.usecase.RecordClientDecision(c.Request.Context(), c.Param("token"), payload.Decision)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateForClient(e))
}

func (h *ClientViewHandler) AddComment(c *gin.Context) {
	var payload request.ClientCommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	e, err := h.usecase.AddClientComment(c.Request.Context(), c.Param("token"), payload.AuthorName, payload.Message)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateForClient(e))
}
