package application

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/navigation"
)

// SessionService decides the cold-start route and tears sessions down.
//
// Remember is off by default: the shipped app always opened on Login no
// matter what the profile store held, and that stays the literal contract
// until product says otherwise. With Remember on, a device with a complete
// minimal profile for its role is routed straight home.
type SessionService struct {
	Store        repository.ProfileStore
	Nav          *navigation.Manager
	Verification *VerificationService
	Logger       *logrus.Logger
	Remember     bool
}

func NewSessionService(store repository.ProfileStore, nav *navigation.Manager, vs *VerificationService, logger *logrus.Logger, remember bool) *SessionService {
	return &SessionService{Store: store, Nav: nav, Verification: vs, Logger: logger, Remember: remember}
}

// ResolveInitialRoute picks the cold-start screen for a device and resets
// its navigation stack to that route.
func (s *SessionService) ResolveInitialRoute(ctx context.Context, deviceID string) (entity.Screen, error) {
	screen, err := s.initialScreen(ctx, deviceID)
	if err != nil {
		return "", err
	}
	s.Nav.Stack(deviceID).Reset(screen)
	return screen, nil
}

func (s *SessionService) initialScreen(ctx context.Context, deviceID string) (entity.Screen, error) {
	if !s.Remember {
		return entity.ScreenLogin, nil
	}

	gender, found, err := s.Store.Get(ctx, deviceID, repository.KeyGender)
	if err != nil {
		return "", err
	}
	if !found {
		return entity.ScreenLogin, nil
	}
	role, err := entity.ParseRole(gender)
	if err != nil {
		// A corrupt stored role falls back to Login rather than crashing
		// the bootstrap; the flow will rewrite it.
		s.Logger.WithError(err).WithField("device_id", deviceID).Warn("stored role invalid, routing to login")
		return entity.ScreenLogin, nil
	}

	switch role {
	case entity.RoleMale:
		raw, found, err := s.Store.Get(ctx, deviceID, repository.KeyMaleProfile)
		if err != nil {
			return "", err
		}
		var mp entity.MaleProfile
		if found && json.Unmarshal([]byte(raw), &mp) == nil && mp.Username != "" {
			return entity.ScreenMaleHome, nil
		}
	case entity.RoleFemale:
		_, hasName, err := s.Store.Get(ctx, deviceID, repository.KeyName)
		if err != nil {
			return "", err
		}
		_, hasAvatar, err := s.Store.Get(ctx, deviceID, repository.KeyAvatar)
		if err != nil {
			return "", err
		}
		if hasName && hasAvatar {
			return entity.ScreenFemaleHome, nil
		}
	}
	return entity.ScreenLogin, nil
}

// Login is the stubbed authentication step: it only advances the stack to
// gender selection. Real identity-provider auth is out of scope.
func (s *SessionService) Login(deviceID string) entity.Screen {
	s.Nav.Stack(deviceID).Push(entity.ScreenGenderSelection, nil)
	return entity.ScreenGenderSelection
}

// Logout wipes the device key-space and resets navigation to Login.
func (s *SessionService) Logout(ctx context.Context, deviceID string) error {
	if err := s.Store.Clear(ctx, deviceID); err != nil {
		return err
	}
	if s.Verification != nil {
		s.Verification.Forget(deviceID)
	}
	s.Nav.Stack(deviceID).Reset(entity.ScreenLogin)
	s.Logger.WithField("device_id", deviceID).Info("logged out")
	return nil
}

// DeleteAccount has the same storage semantics as Logout: the device
// key-space is the whole account.
func (s *SessionService) DeleteAccount(ctx context.Context, deviceID string) error {
	if err := s.Logout(ctx, deviceID); err != nil {
		return err
	}
	s.Logger.WithField("device_id", deviceID).Info("account deleted")
	return nil
}
