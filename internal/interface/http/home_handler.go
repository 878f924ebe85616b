package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/application"
	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/pkg/response"
	"github.com/vaanicall/vaani-backend/pkg/validation"
)

// HomeHandler serves the role-specific home surfaces and the listener's
// verification gate.
type HomeHandler struct {
	Wallet       *application.WalletService
	Verification *application.VerificationService
	Logger       *logrus.Logger
}

func NewHomeHandler(wallet *application.WalletService, verification *application.VerificationService, logger *logrus.Logger) *HomeHandler {
	return &HomeHandler{Wallet: wallet, Verification: verification, Logger: logger}
}

// ListenerHome returns earnings, call history, safety tips and gate state.
func (h *HomeHandler) ListenerHome(c *gin.Context) {
	id := deviceID(c)
	home, err := h.Wallet.ListenerHome(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	status, err := h.Verification.Status(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, home, "listener home", gin.H{
		"verification_status": status,
		"live":                h.Verification.Live(id),
	})
}

// GoLive toggles the listener's availability, gated on approval.
func (h *HomeHandler) GoLive(c *gin.Context) {
	live, err := h.Verification.GoLive(c.Request.Context(), deviceID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"live": live}, "live status updated", nil)
}

// VerificationStatus reports the gate state for the device.
func (h *HomeHandler) VerificationStatus(c *gin.Context) {
	status, err := h.Verification.Status(c.Request.Context(), deviceID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status}, "verification status", nil)
}

type setVerificationStatusRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// SetVerificationStatus is the reviewer-side transition endpoint, the
// stand-in for the real backend review pipeline.
func (h *HomeHandler) SetVerificationStatus(c *gin.Context) {
	var req setVerificationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Verification.SetStatus(c.Request.Context(), req.DeviceID, entity.VerificationStatus(req.Status)); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"device_id": req.DeviceID, "status": req.Status}, "status set", nil)
}
