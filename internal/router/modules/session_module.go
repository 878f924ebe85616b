package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaanicall/vaani-backend/internal/container"
	handlers "github.com/vaanicall/vaani-backend/internal/interface/http"
	"github.com/vaanicall/vaani-backend/internal/interface/middleware"
)

// SessionModule wires bootstrap, the stubbed login, teardown and the
// navigation mirror.
type SessionModule struct {
	Handler *handlers.SessionHandler
}

func NewSessionModule(h *handlers.SessionHandler) *SessionModule {
	return &SessionModule{Handler: h}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByDeviceID(), nil)

	sess := rg.Group("/session")
	sess.Use(rl)
	{
		sess.GET("/bootstrap", m.Handler.Bootstrap)
		sess.POST("/login", m.Handler.Login)
		sess.POST("/logout", m.Handler.Logout)
		sess.DELETE("/account", m.Handler.DeleteAccount)
	}

	nav := rg.Group("/navigation")
	nav.Use(rl)
	{
		nav.GET("", m.Handler.Navigation)
		nav.POST("/back", m.Handler.GoBack)
	}
}
