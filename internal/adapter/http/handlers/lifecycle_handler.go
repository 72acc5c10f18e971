package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "contractor_crm/internal/adapter/http/dto/request"
	response "contractor_crm/internal/adapter/http/dto/response"
)

// SendEstimate promotes a draft and emails the client. With dispatch=false it
// only prepares the document and returns the review token for an external
// mailer; POST .../sent then records the send.
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	var payload request.SendEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	if !payload.DispatchRequested() {
		prepared, token, err := h.usecase.PrepareForSending(c.Request.Context(), id, payload.RecipientEmail)
		if err != nil {
			appErr := mapEstimateError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.PreparedEstimateResponse{
			Estimate: response.FromEstimate(prepared),
			Token:    token,
		})
		return
	}

	sent, err := h.usecase.SendEstimate(c.Request.Context(), id, payload.ToCommand())
	if err != nil {
		log.Printf("[estimate][handler] send failed id=%s err=%v", id, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PreparedEstimateResponse{
		Estimate: response.FromEstimate(sent),
		Token:    sent.EmailToken,
	})
}

func (h *EstimateHandler) RecordSent(c *gin.Context) {
	updated, err := h.usecase.RecordSent(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) ConvertToInvoice(c *gin.Context) {
	var payload request.ConvertToInvoiceRequest
	// The body is optional; an empty one converts anonymously.
	_ = c.ShouldBindJSON(&payload)

	updated, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"), payload.ModifiedBy)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) CreateChangeOrder(c *gin.Context) {
	created, err := h.usecase.CreateChangeOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(created))
}

func (h *EstimateHandler) GeneratePurchaseOrder(c *gin.Context) {
	updated, poID, err := h.usecase.GeneratePurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[estimate][handler] purchase order failed id=%s err=%v", c.Param("id"), err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.PurchaseOrderResponse{
		Estimate:        response.FromEstimate(updated),
		PurchaseOrderID: poID,
	})
}
