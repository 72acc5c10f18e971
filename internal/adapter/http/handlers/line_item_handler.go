package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "contractor_crm/internal/adapter/http/dto/request"
	response "contractor_crm/internal/adapter/http/dto/response"
	"contractor_crm/internal/domain/entities"
)

func (h *EstimateHandler) AddLineItem(c *gin.Context) {
	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(updated))
}

func (h *EstimateHandler) UpdateLineItem(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) DeleteLineItem(c *gin.Context) {
	updated, err := h.usecase.DeleteLineItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), c.Query("modified_by"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) ReorderLineItems(c *gin.Context) {
	var payload request.ReorderLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ReorderLineItems(c.Request.Context(), c.Param("id"), payload.OrderedIDs, payload.ModifiedBy)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) FindDuplicateLineItems(c *gin.Context) {
	groups, err := h.usecase.FindDuplicateLineItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if groups == nil {
		groups = [][]entities.LineItem{}
	}
	c.JSON(http.StatusOK, groups)
}

func (h *EstimateHandler) ImportCollection(c *gin.Context) {
	var payload request.ImportCollectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ImportCollection(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(updated))
}
