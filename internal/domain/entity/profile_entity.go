package entity

// MaleProfile is the JSON document written under the "userProfile" key when
// a caller completes the username step.
type MaleProfile struct {
	Username string `json:"username"`
	Gender   Role   `json:"gender"`
}

// Profile is the combined document under "@user_profile", maintained by the
// edit-profile screen after onboarding. Age is only ever set there.
type Profile struct {
	Name   string `json:"name"`
	Age    int    `json:"age,omitempty"`
	Gender Role   `json:"gender"`
	Avatar string `json:"avatar,omitempty"`
}

// VerificationStatus is the tri-state gate controlling whether a listener
// may go live. "rejected" is reserved: no in-app path sets it today.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// ValidVerificationStatus reports whether s is one of the three states.
func ValidVerificationStatus(s string) bool {
	switch VerificationStatus(s) {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}
