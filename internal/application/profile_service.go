package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
)

// ProfileService assembles and edits the post-onboarding profile. The
// edit screen keeps the combined document and the individual flow keys in
// sync, and that mirroring is preserved here.
type ProfileService struct {
	Store  repository.ProfileStore
	Logger *logrus.Logger
}

func NewProfileService(store repository.ProfileStore, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Store: store, Logger: logger}
}

// GetProfile merges the combined document with the per-step keys, with the
// per-step keys winning, the way the edit screen loads state.
func (s *ProfileService) GetProfile(ctx context.Context, deviceID string) (entity.Profile, error) {
	var p entity.Profile

	if raw, found, err := s.Store.Get(ctx, deviceID, repository.KeyProfile); err != nil {
		return entity.Profile{}, err
	} else if found {
		_ = json.Unmarshal([]byte(raw), &p)
	}

	gender, foundGender, err := s.Store.Get(ctx, deviceID, repository.KeyGender)
	if err != nil {
		return entity.Profile{}, err
	}
	if foundGender {
		p.Gender = entity.Role(gender)
	}

	if name, found, err := s.Store.Get(ctx, deviceID, repository.KeyName); err != nil {
		return entity.Profile{}, err
	} else if found {
		p.Name = name
	}

	switch p.Gender {
	case entity.RoleFemale:
		if avatar, found, err := s.Store.Get(ctx, deviceID, repository.KeyAvatar); err != nil {
			return entity.Profile{}, err
		} else if found {
			p.Avatar = avatar
		} else if p.Avatar == "" {
			p.Avatar = entity.DefaultAvatar()
		}
	case entity.RoleMale:
		// Callers render initials, not an avatar.
		p.Avatar = ""
		if p.Name == "" {
			raw, found, err := s.Store.Get(ctx, deviceID, repository.KeyMaleProfile)
			if err != nil {
				return entity.Profile{}, err
			}
			var mp entity.MaleProfile
			if found && json.Unmarshal([]byte(raw), &mp) == nil {
				p.Name = mp.Username
			}
		}
	}

	if p.Name == "" && p.Gender == "" {
		return entity.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

// UpdateProfileInput carries the editable fields. Age is optional and only
// ever set here, never during onboarding.
type UpdateProfileInput struct {
	Name   string
	Age    int
	Avatar string
}

// UpdateProfile validates and writes the combined document, mirroring the
// name (and, for listeners, the avatar) into the per-step keys.
func (s *ProfileService) UpdateProfile(ctx context.Context, deviceID string, in UpdateProfileInput) (entity.Profile, error) {
	current, err := s.GetProfile(ctx, deviceID)
	if err != nil {
		return entity.Profile{}, err
	}

	name := strings.TrimSpace(in.Name)
	if !entity.ValidDisplayName(name) {
		return entity.Profile{}, fmt.Errorf("%w: name must be %d-%d characters", ErrValidation, entity.MinDisplayNameLen, entity.MaxDisplayNameLen)
	}
	if in.Age < 0 {
		return entity.Profile{}, fmt.Errorf("%w: age must be positive", ErrValidation)
	}
	if in.Avatar != "" {
		if current.Gender != entity.RoleFemale {
			return entity.Profile{}, fmt.Errorf("%w: avatars are listener-only", ErrValidation)
		}
		if !entity.ValidAvatar(in.Avatar) {
			return entity.Profile{}, fmt.Errorf("%w: avatar not in the offered set", ErrValidation)
		}
		current.Avatar = in.Avatar
	}

	current.Name = name
	if in.Age > 0 {
		current.Age = in.Age
	}

	doc, err := json.Marshal(current)
	if err != nil {
		return entity.Profile{}, err
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyProfile, string(doc)); err != nil {
		return entity.Profile{}, err
	}
	if err := s.Store.Set(ctx, deviceID, repository.KeyName, name); err != nil {
		return entity.Profile{}, err
	}
	if current.Gender == entity.RoleFemale && current.Avatar != "" {
		if err := s.Store.Set(ctx, deviceID, repository.KeyAvatar, current.Avatar); err != nil {
			return entity.Profile{}, err
		}
	}

	s.Logger.WithField("device_id", deviceID).Info("profile updated")
	return current, nil
}
