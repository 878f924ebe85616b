package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaanicall/vaani-backend/internal/container"
	handlers "github.com/vaanicall/vaani-backend/internal/interface/http"
	"github.com/vaanicall/vaani-backend/internal/interface/middleware"
)

// OnboardingModule wires the step-controller endpoints.
// POST /api/onboarding/role, /username, /name, /avatar, /language, /verification
// GET  /api/onboarding/steps, /avatars, /languages
type OnboardingModule struct {
	Handler *handlers.OnboardingHandler
}

func NewOnboardingModule(h *handlers.OnboardingHandler) *OnboardingModule {
	return &OnboardingModule{Handler: h}
}

func (m *OnboardingModule) Register(rg *gin.RouterGroup) {
	// One active screen at a time means step traffic is light; the limiter
	// only guards against misbehaving clients.
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByDeviceID(), nil)

	ob := rg.Group("/onboarding")
	ob.Use(rl)
	{
		ob.GET("/steps", m.Handler.Steps)
		ob.GET("/avatars", m.Handler.Avatars)
		ob.GET("/languages", m.Handler.Languages)

		ob.POST("/role", m.Handler.SelectRole)
		ob.POST("/username", m.Handler.SubmitUsername)
		ob.POST("/name", m.Handler.SubmitName)
		ob.POST("/avatar", m.Handler.SubmitAvatar)
		ob.POST("/language", m.Handler.SubmitLanguage)
		ob.POST("/verification", m.Handler.CompleteVerification)
	}
}
