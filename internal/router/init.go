package router

import (
	"github.com/vaanicall/vaani-backend/internal/application"
	"github.com/vaanicall/vaani-backend/internal/container"
	handlers "github.com/vaanicall/vaani-backend/internal/interface/http"
	"github.com/vaanicall/vaani-backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	store := container.GetProfileStore()
	nav := container.GetNavManager()

	var pub application.ReviewPublisher
	if p := container.GetReviewPub(); p != nil {
		pub = p
	}

	onboardingSvc := application.NewOnboardingService(store, nav, pub, logger)
	verificationSvc := application.NewVerificationService(store, nav, logger, cfg.VerificationPersistEnabled)
	sessionSvc := application.NewSessionService(store, nav, verificationSvc, logger, cfg.RememberSessionEnabled)
	profileSvc := application.NewProfileService(store, logger)
	walletSvc := application.NewWalletService(container.GetWalletRepo(), logger, cfg.MinimumWithdraw)

	r.Add(modules.NewOnboardingModule(handlers.NewOnboardingHandler(onboardingSvc, logger)))
	r.Add(modules.NewSessionModule(handlers.NewSessionHandler(sessionSvc, nav, logger)))
	r.Add(modules.NewHomeModule(handlers.NewHomeHandler(walletSvc, verificationSvc, logger)))
	r.Add(modules.NewWalletModule(handlers.NewWalletHandler(walletSvc, logger), handlers.NewProfileHandler(profileSvc, logger)))
}
