package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// StepID identifies one screen-validate-persist unit of the new-user flow.
type StepID string

const (
	StepRoleSelection     StepID = "role_selection"
	StepMaleUsername      StepID = "male_username"
	StepFemaleName        StepID = "female_name"
	StepFemaleAvatar      StepID = "female_avatar"
	StepFemaleLanguage    StepID = "female_language"
	StepVoiceVerification StepID = "voice_verification"
)

// Display name rule shared by the male username and female name steps.
// The client shows a 20 character counter; 3 is the accept boundary.
const (
	MinDisplayNameLen = 3
	MaxDisplayNameLen = 20
)

// ResolveSteps returns the ordered remaining onboarding steps for a role.
// Pure and deterministic; unknown roles fail loudly.
func ResolveSteps(r Role) ([]StepID, error) {
	switch r {
	case RoleMale:
		return []StepID{StepMaleUsername}, nil
	case RoleFemale:
		return []StepID{StepFemaleName, StepFemaleAvatar, StepFemaleLanguage, StepVoiceVerification}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
}

// ValidDisplayName reports whether a submitted name passes the length rule
// after trimming, mirroring the client-side gate.
func ValidDisplayName(s string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= MinDisplayNameLen && n <= MaxDisplayNameLen
}

// Avatars is the fixed emoji set offered on the listener avatar step.
// The first entry is the default selection.
var Avatars = []string{
	"👩", "👩‍💼", "👩‍⚕️", "👩‍🎓", "👩‍🏫", "👩‍⚖️",
	"👩‍🌾", "👩‍🍳", "👩‍🔧", "👩‍🏭", "👩‍💻", "👩‍🎨",
}

// DefaultAvatar returns the default avatar selection.
func DefaultAvatar() string { return Avatars[0] }

// ValidAvatar reports whether the avatar belongs to the fixed set.
func ValidAvatar(a string) bool {
	for _, v := range Avatars {
		if v == a {
			return true
		}
	}
	return false
}

// Language is one selectable listener language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

const DefaultLanguageCode = "en"

// Languages is the fixed list offered on the listener language step.
var Languages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்"},
	{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી"},
	{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
	{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം"},
	{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ"},
}

// ValidLanguageCode reports whether the code belongs to the fixed list.
func ValidLanguageCode(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
