package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/application"
	"github.com/vaanicall/vaani-backend/internal/navigation"
	"github.com/vaanicall/vaani-backend/pkg/response"
)

type SessionHandler struct {
	Svc    *application.SessionService
	Nav    *navigation.Manager
	Logger *logrus.Logger
}

func NewSessionHandler(svc *application.SessionService, nav *navigation.Manager, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{Svc: svc, Nav: nav, Logger: logger}
}

// Bootstrap resolves the cold-start route for the device.
func (h *SessionHandler) Bootstrap(c *gin.Context) {
	screen, err := h.Svc.ResolveInitialRoute(c.Request.Context(), deviceID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"initial_route": screen}, "session bootstrapped", nil)
}

// Login is the stubbed sign-in: it advances the stack to gender selection.
func (h *SessionHandler) Login(c *gin.Context) {
	next := h.Svc.Login(deviceID(c))
	response.Success(c, http.StatusOK, gin.H{"next": next}, "logged in", nil)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), deviceID(c)); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *SessionHandler) DeleteAccount(c *gin.Context) {
	if err := h.Svc.DeleteAccount(c.Request.Context(), deviceID(c)); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "account deleted", nil)
}

// Navigation returns the device's current route stack so the client can
// mirror it.
func (h *SessionHandler) Navigation(c *gin.Context) {
	st := h.Nav.Stack(deviceID(c))
	response.Success(c, http.StatusOK, gin.H{"routes": st.Routes(), "current": st.Current()}, "navigation state", nil)
}

// GoBack pops the device's route stack (device back action).
func (h *SessionHandler) GoBack(c *gin.Context) {
	st := h.Nav.Stack(deviceID(c))
	st.GoBack()
	response.Success(c, http.StatusOK, gin.H{"current": st.Current()}, "went back", nil)
}
