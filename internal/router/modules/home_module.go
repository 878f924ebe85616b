package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaanicall/vaani-backend/internal/container"
	handlers "github.com/vaanicall/vaani-backend/internal/interface/http"
	"github.com/vaanicall/vaani-backend/internal/interface/middleware"
)

// HomeModule wires the role home surfaces and the verification gate.
// The reviewer-side status endpoint is only meant for internal callers, so
// it keeps a strict per-IP limit with a private-network bypass.
type HomeModule struct {
	Handler *handlers.HomeHandler
}

func NewHomeModule(h *handlers.HomeHandler) *HomeModule {
	return &HomeModule{Handler: h}
}

func (m *HomeModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByDeviceID(), nil)

	home := rg.Group("/home")
	home.Use(rl)
	{
		home.GET("/listener", m.Handler.ListenerHome)
		home.POST("/listener/live", m.Handler.GoLive)
	}

	ver := rg.Group("/verification")
	{
		ver.GET("/status", rl, m.Handler.VerificationStatus)
		reviewerLimit := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
		ver.PUT("/status", reviewerLimit, m.Handler.SetVerificationStatus)
	}
}
