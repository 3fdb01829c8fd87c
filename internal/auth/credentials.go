package auth

import "crypto/subtle"

// CredentialChecker validates an office-staff credential pair. The static
// implementation below is the whole control today; the interface exists so a
// real identity backend can replace it without touching the handlers.
type CredentialChecker interface {
	Check(username, password string) bool
}

// StaticChecker compares against the single configured credential pair.
type StaticChecker struct {
	username string
	password string
}

func NewStaticChecker(username, password string) *StaticChecker {
	return &StaticChecker{username: username, password: password}
}

var _ CredentialChecker = (*StaticChecker)(nil)

// Check is constant-time over both fields. Unconfigured credentials never
// match anything.
func (s *StaticChecker) Check(username, password string) bool {
	if s.username == "" || s.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(s.username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
	return userOK && passOK
}
