package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/application"
	"github.com/vaanicall/vaani-backend/pkg/response"
	"github.com/vaanicall/vaani-backend/pkg/validation"
)

type WalletHandler struct {
	Svc    *application.WalletService
	Logger *logrus.Logger
}

func NewWalletHandler(svc *application.WalletService, logger *logrus.Logger) *WalletHandler {
	return &WalletHandler{Svc: svc, Logger: logger}
}

type withdrawRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}

type addPaymentMethodRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=bank upi"`
	Label   string `json:"label"`
	Details string `json:"details" binding:"required"`
}

func (h *WalletHandler) Wallet(c *gin.Context) {
	w, err := h.Svc.CallerWallet(c.Request.Context(), deviceID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, w, "wallet", nil)
}

func (h *WalletHandler) Transactions(c *gin.Context) {
	txs, err := h.Svc.Transactions(c.Request.Context(), deviceID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": txs}, "transactions", nil)
}

func (h *WalletHandler) PaymentMethods(c *gin.Context) {
	ms, err := h.Svc.PaymentMethods(c.Request.Context(), deviceID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment_methods": ms}, "payment methods", nil)
}

func (h *WalletHandler) AddPaymentMethod(c *gin.Context) {
	var req addPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.AddPaymentMethod(c.Request.Context(), deviceID(c), application.AddPaymentMethodInput{
		Kind:    req.Kind,
		Label:   req.Label,
		Details: req.Details,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, m, "payment method added", nil)
}

func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	receipt, err := h.Svc.Withdraw(c.Request.Context(), deviceID(c), req.MethodID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, receipt, "withdrawal successful", nil)
}
