package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaanicall/vaani-backend/internal/container"
	handlers "github.com/vaanicall/vaani-backend/internal/interface/http"
	"github.com/vaanicall/vaani-backend/internal/interface/middleware"
)

// WalletModule wires the caller wallet and listener withdrawal surfaces,
// plus profile read/update.
type WalletModule struct {
	Wallet  *handlers.WalletHandler
	Profile *handlers.ProfileHandler
}

func NewWalletModule(w *handlers.WalletHandler, p *handlers.ProfileHandler) *WalletModule {
	return &WalletModule{Wallet: w, Profile: p}
}

func (m *WalletModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByDeviceID(), nil)

	wallet := rg.Group("/wallet")
	wallet.Use(rl)
	{
		wallet.GET("", m.Wallet.Wallet)
		wallet.GET("/transactions", m.Wallet.Transactions)
		wallet.GET("/payment-methods", m.Wallet.PaymentMethods)
		wallet.POST("/payment-methods", m.Wallet.AddPaymentMethod)
		wallet.POST("/withdraw", m.Wallet.Withdraw)
	}

	profile := rg.Group("/profile")
	profile.Use(rl)
	{
		profile.GET("", m.Profile.GetProfile)
		profile.PUT("", m.Profile.UpdateProfile)
	}
}
