package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/navigation"
)

// VerificationService is the tri-state gate in front of the listener's
// "go live" action. Status transitions are driven externally (the review
// worker or the status endpoint); the in-app flow only ever produces
// pending.
//
// With Persist disabled the status lives in memory only and every process
// start begins back at pending — the mobile app behaved exactly this way,
// and product has not said whether that is intentional, so it stays the
// default. Enabling Persist stores the status in the profile store instead.
type VerificationService struct {
	Store   repository.ProfileStore
	Nav     *navigation.Manager
	Logger  *logrus.Logger
	Persist bool

	mu     sync.Mutex
	status map[string]entity.VerificationStatus
	live   map[string]bool
}

func NewVerificationService(store repository.ProfileStore, nav *navigation.Manager, logger *logrus.Logger, persist bool) *VerificationService {
	return &VerificationService{
		Store:   store,
		Nav:     nav,
		Logger:  logger,
		Persist: persist,
		status:  make(map[string]entity.VerificationStatus),
		live:    make(map[string]bool),
	}
}

// Status returns the device's verification status, pending by default.
func (s *VerificationService) Status(ctx context.Context, deviceID string) (entity.VerificationStatus, error) {
	if s.Persist {
		v, found, err := s.Store.Get(ctx, deviceID, repository.KeyVerification)
		if err != nil {
			return "", err
		}
		if !found || !entity.ValidVerificationStatus(v) {
			return entity.VerificationPending, nil
		}
		return entity.VerificationStatus(v), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.status[deviceID]; ok {
		return st, nil
	}
	return entity.VerificationPending, nil
}

// SetStatus records an externally decided transition (reviewer approval or
// rejection).
func (s *VerificationService) SetStatus(ctx context.Context, deviceID string, status entity.VerificationStatus) error {
	if s.Persist {
		if err := s.Store.Set(ctx, deviceID, repository.KeyVerification, string(status)); err != nil {
			return err
		}
	} else {
		s.mu.Lock()
		s.status[deviceID] = status
		s.mu.Unlock()
	}
	s.Logger.WithFields(logrus.Fields{"device_id": deviceID, "status": status}).Info("verification status updated")
	return nil
}

// GoLive toggles the listener's live flag. Only approved devices may pass;
// pending devices are redirected to the verification screen, and rejected
// devices get a distinct refusal.
func (s *VerificationService) GoLive(ctx context.Context, deviceID string) (bool, error) {
	st, err := s.Status(ctx, deviceID)
	if err != nil {
		return false, err
	}
	switch st {
	case entity.VerificationApproved:
		// fall through to the toggle
	case entity.VerificationRejected:
		return false, ErrVerificationRejected
	default:
		s.Nav.Stack(deviceID).Push(entity.ScreenAudioVerification, map[string]string{
			"prompt": "Please complete verification before going live.",
		})
		return false, ErrNotVerified
	}

	s.mu.Lock()
	now := !s.live[deviceID]
	s.live[deviceID] = now
	s.mu.Unlock()

	s.Logger.WithFields(logrus.Fields{"device_id": deviceID, "live": now}).Info("live status toggled")
	return now, nil
}

// Live reports whether the listener is currently callable.
func (s *VerificationService) Live(deviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live[deviceID]
}

// Forget drops in-memory gate state for a device (logout, deletion).
func (s *VerificationService) Forget(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.status, deviceID)
	delete(s.live, deviceID)
}
