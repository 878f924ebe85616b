package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/navigation"
)

// ReviewPublisher pushes completed voice-verification submissions onto the
// review queue. Satisfied by helpers.RabbitPublisher; nil disables publishing.
type ReviewPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ReviewSubmission is the message handed to the verification reviewers.
type ReviewSubmission struct {
	DeviceID    string    `json:"device_id"`
	Language    string    `json:"language,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// OnboardingService is the step controller for the new-user flow. Every
// step validates its input, persists the result, and only then advances the
// device's navigation stack; a failed write never navigates.
type OnboardingService struct {
	Store     repository.ProfileStore
	Nav       *navigation.Manager
	Publisher ReviewPublisher
	Logger    *logrus.Logger
}

func NewOnboardingService(store repository.ProfileStore, nav *navigation.Manager, pub ReviewPublisher, logger *logrus.Logger) *OnboardingService {
	return &OnboardingService{Store: store, Nav: nav, Publisher: pub, Logger: logger}
}

// Steps returns the ordered remaining onboarding steps for a role.
func (s *OnboardingService) Steps(role entity.Role) ([]entity.StepID, error) {
	return entity.ResolveSteps(role)
}

// SelectRole persists the chosen role and branches the flow: callers go to
// the username step, listeners to the name step.
func (s *OnboardingService) SelectRole(ctx context.Context, deviceID, roleStr string) (entity.Screen, error) {
	if strings.TrimSpace(roleStr) == "" {
		return "", fmt.Errorf("%w: role not selected", ErrValidation)
	}
	role, err := entity.ParseRole(roleStr)
	if err != nil {
		return "", err
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyGender, string(role)); err != nil {
		return "", err
	}

	next := entity.ScreenMaleUsername
	if role == entity.RoleFemale {
		next = entity.ScreenFemaleNameSetup
	}
	s.Nav.Stack(deviceID).Push(next, nil)
	s.Logger.WithFields(logrus.Fields{"device_id": deviceID, "role": role}).Info("role selected")
	return next, nil
}

// SubmitUsername completes the caller flow: it writes the combined profile
// document and lands the device on the caller home screen.
func (s *OnboardingService) SubmitUsername(ctx context.Context, deviceID, username string) (entity.Screen, error) {
	if err := s.requireRole(ctx, deviceID, entity.RoleMale); err != nil {
		return "", err
	}
	username = strings.TrimSpace(username)
	if !entity.ValidDisplayName(username) {
		return "", fmt.Errorf("%w: username must be %d-%d characters", ErrValidation, entity.MinDisplayNameLen, entity.MaxDisplayNameLen)
	}
	doc, err := json.Marshal(entity.MaleProfile{Username: username, Gender: entity.RoleMale})
	if err != nil {
		return "", err
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyMaleProfile, string(doc)); err != nil {
		return "", err
	}

	s.Nav.Stack(deviceID).Push(entity.ScreenMaleHome, nil)
	s.Logger.WithField("device_id", deviceID).Info("caller onboarding complete")
	return entity.ScreenMaleHome, nil
}

// SubmitName stores the listener's display name and advances to the avatar step.
func (s *OnboardingService) SubmitName(ctx context.Context, deviceID, name string) (entity.Screen, error) {
	if err := s.requireRole(ctx, deviceID, entity.RoleFemale); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if !entity.ValidDisplayName(name) {
		return "", fmt.Errorf("%w: name must be %d-%d characters", ErrValidation, entity.MinDisplayNameLen, entity.MaxDisplayNameLen)
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyName, name); err != nil {
		return "", err
	}

	s.Nav.Stack(deviceID).Push(entity.ScreenFemaleAvatarSetup, nil)
	return entity.ScreenFemaleAvatarSetup, nil
}

// SubmitAvatar stores the avatar selection (defaulting to the first of the
// fixed set) and advances to the language step.
func (s *OnboardingService) SubmitAvatar(ctx context.Context, deviceID, avatar string) (entity.Screen, error) {
	if err := s.requireKey(ctx, deviceID, repository.KeyName); err != nil {
		return "", err
	}
	if avatar == "" {
		avatar = entity.DefaultAvatar()
	}
	if !entity.ValidAvatar(avatar) {
		return "", fmt.Errorf("%w: avatar not in the offered set", ErrValidation)
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyAvatar, avatar); err != nil {
		return "", err
	}

	s.Nav.Stack(deviceID).Push(entity.ScreenFemaleLanguageSetup, nil)
	return entity.ScreenFemaleLanguageSetup, nil
}

// SubmitLanguage stores the language selection (defaulting to "en") and
// advances to voice verification.
func (s *OnboardingService) SubmitLanguage(ctx context.Context, deviceID, code string) (entity.Screen, error) {
	if err := s.requireKey(ctx, deviceID, repository.KeyAvatar); err != nil {
		return "", err
	}
	if code == "" {
		code = entity.DefaultLanguageCode
	}
	if !entity.ValidLanguageCode(code) {
		return "", fmt.Errorf("%w: language not in the offered list", ErrValidation)
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyLanguage, code); err != nil {
		return "", err
	}

	s.Nav.Stack(deviceID).Push(entity.ScreenAudioVerification, nil)
	return entity.ScreenAudioVerification, nil
}

// CompleteVoiceVerification finishes the listener flow. The continue action
// requires a recording to exist; the flag is all that is checked, matching
// the client. The stack is reset, not pushed, so the home screen becomes
// the new root. The review submission is published best-effort: a queue
// outage never blocks the step, since the in-app flow only ever produces a
// pending status anyway.
func (s *OnboardingService) CompleteVoiceVerification(ctx context.Context, deviceID string, hasRecording bool) (entity.Screen, error) {
	if err := s.requireKey(ctx, deviceID, repository.KeyAvatar); err != nil {
		return "", err
	}
	if !hasRecording {
		return "", fmt.Errorf("%w: no recording present", ErrValidation)
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyVoiceVerified, "true"); err != nil {
		return "", err
	}

	if s.Publisher != nil {
		lang, _, _ := s.Store.Get(ctx, deviceID, repository.KeyLanguage)
		sub := ReviewSubmission{DeviceID: deviceID, Language: lang, SubmittedAt: time.Now().UTC()}
		if err := s.Publisher.PublishJSON(ctx, sub); err != nil {
			s.Logger.WithError(err).WithField("device_id", deviceID).Warn("review submission publish failed")
		}
	}

	s.Nav.Stack(deviceID).Reset(entity.ScreenFemaleHome)
	s.Logger.WithField("device_id", deviceID).Info("listener onboarding complete")
	return entity.ScreenFemaleHome, nil
}

// requireRole guards a step on the role persisted by the selection step.
func (s *OnboardingService) requireRole(ctx context.Context, deviceID string, want entity.Role) error {
	v, found, err := s.Store.Get(ctx, deviceID, repository.KeyGender)
	if err != nil {
		return err
	}
	if !found || entity.Role(v) != want {
		return fmt.Errorf("%w: role %q not selected", ErrStepPrecondition, want)
	}
	return nil
}

// requireKey guards a step on a value persisted by an earlier step.
func (s *OnboardingService) requireKey(ctx context.Context, deviceID, key string) error {
	_, found, err := s.Store.Get(ctx, deviceID, key)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: missing %s", ErrStepPrecondition, key)
	}
	return nil
}
