package repository

import (
	"context"
	"errors"
)

// Storage keys used by the onboarding flow. They are carried over verbatim
// from the mobile client's AsyncStorage key-space so a device migrating
// between client versions keeps its profile.
const (
	KeyGender        = "userGender"
	KeyMaleProfile   = "userProfile"
	KeyName          = "@user_name"
	KeyAvatar        = "@user_avatar"
	KeyLanguage      = "@user_language"
	KeyVoiceVerified = "@voice_verified"
	KeyProfile       = "@user_profile"
	KeyVerification  = "@verification_status"
)

// ErrStorageUnavailable wraps any transport-level failure of the backing
// store. Callers must surface it as retryable; it is never swallowed, so a
// failed write can never be followed by a navigation that depends on it.
var ErrStorageUnavailable = errors.New("profile storage unavailable")

// ProfileStore is durable per-device key-value persistence with
// last-write-wins semantics. There is exactly one writer per device (the
// device's own user), so no transactional guarantees are needed.
type ProfileStore interface {
	Get(ctx context.Context, deviceID, key string) (string, bool, error)
	Set(ctx context.Context, deviceID, key, value string) error
	Delete(ctx context.Context, deviceID, key string) error
	// Clear wipes the device's entire key-space (logout, account deletion).
	Clear(ctx context.Context, deviceID string) error
}
