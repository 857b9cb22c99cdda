package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"payments-api/internal/controller/apperror"
	"payments-api/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *payment.Service
}

func NewPaymentHandler(s *payment.Service) PaymentHandler {
	return PaymentHandler{service: s}
}

// Confirm handles PUT /api/payments/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var p payment.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	confirmed, err := h.service.ConfirmPayment(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmed)
}

// GetBySeller handles GET /api/payments/seller/:sellerId.
func (h *PaymentHandler) GetBySeller(c *gin.Context) {
	sellerID, err := parseSellerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid seller id"})
		return
	}

	payments, err := h.service.GetPaymentsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetByBillingCode handles GET /api/payments/billingCode/:billingCode.
func (h *PaymentHandler) GetByBillingCode(c *gin.Context) {
	billingCode := c.Param("billingCode")
	if billingCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing billing code"})
		return
	}

	p, err := h.service.GetPaymentByBillingCode(c.Request.Context(), billingCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Validate handles GET /api/payments/validate/:sellerId/:billingCode.
func (h *PaymentHandler) Validate(c *gin.Context) {
	sellerID, err := parseSellerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid seller id"})
		return
	}

	exists, err := h.service.ValidatePaymentExists(c.Request.Context(), sellerID, c.Param("billingCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, exists)
}

// Save handles PUT /api/payments/save, the raw upsert that bypasses the
// confirmation logic.
func (h *PaymentHandler) Save(c *gin.Context) {
	var p payment.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	saved, err := h.service.SavePayment(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func parseSellerID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("sellerId"), 10, 64)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, apperror.ErrInvalidPayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	case errors.Is(err, apperror.ErrDuplicatePayment):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
