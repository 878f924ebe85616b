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

type OnboardingHandler struct {
	Svc    *application.OnboardingService
	Logger *logrus.Logger
}

func NewOnboardingHandler(svc *application.OnboardingService, logger *logrus.Logger) *OnboardingHandler {
	return &OnboardingHandler{Svc: svc, Logger: logger}
}

type selectRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type submitNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type submitUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type submitAvatarRequest struct {
	Avatar string `json:"avatar"`
}

type submitLanguageRequest struct {
	Language string `json:"language"`
}

type completeVerificationRequest struct {
	HasRecording bool `json:"has_recording"`
}

// Steps lists the remaining onboarding steps for a role (pure resolver).
func (h *OnboardingHandler) Steps(c *gin.Context) {
	role, err := entity.ParseRole(c.Query("role"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	steps, err := h.Svc.Steps(role)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"role": role, "steps": steps}, "onboarding steps", nil)
}

func (h *OnboardingHandler) SelectRole(c *gin.Context) {
	var req selectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	next, err := h.Svc.SelectRole(c.Request.Context(), deviceID(c), req.Role)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": next}, "role saved", nil)
}

func (h *OnboardingHandler) SubmitUsername(c *gin.Context) {
	var req submitUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	next, err := h.Svc.SubmitUsername(c.Request.Context(), deviceID(c), req.Username)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": next}, "username saved", nil)
}

func (h *OnboardingHandler) SubmitName(c *gin.Context) {
	var req submitNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	next, err := h.Svc.SubmitName(c.Request.Context(), deviceID(c), req.Name)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": next}, "name saved", nil)
}

func (h *OnboardingHandler) SubmitAvatar(c *gin.Context) {
	var req submitAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	next, err := h.Svc.SubmitAvatar(c.Request.Context(), deviceID(c), req.Avatar)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": next}, "avatar saved", nil)
}

// Avatars returns the fixed avatar catalog for the setup screen.
func (h *OnboardingHandler) Avatars(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"avatars": entity.Avatars, "default": entity.DefaultAvatar()}, "avatar catalog", nil)
}

func (h *OnboardingHandler) SubmitLanguage(c *gin.Context) {
	var req submitLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	next, err := h.Svc.SubmitLanguage(c.Request.Context(), deviceID(c), req.Language)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": next}, "language saved", nil)
}

// Languages returns the fixed language catalog for the setup screen.
func (h *OnboardingHandler) Languages(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"languages": entity.Languages, "default": entity.DefaultLanguageCode}, "language catalog", nil)
}

func (h *OnboardingHandler) CompleteVerification(c *gin.Context) {
	var req completeVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	next, err := h.Svc.CompleteVoiceVerification(c.Request.Context(), deviceID(c), req.HasRecording)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": next, "status": entity.VerificationPending}, "verification submitted", nil)
}
