package enums

import "fmt"

// SessionRole tags the demo identity occupying the session slot.
type SessionRole string

const (
	SessionRoleUser  SessionRole = "user"
	SessionRoleAdmin SessionRole = "admin"
)

// String implements fmt.Stringer.
func (r SessionRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known SessionRole.
func (r SessionRole) IsValid() bool {
	return r == SessionRoleUser || r == SessionRoleAdmin
}

// ParseSessionRole converts raw input into a SessionRole.
func ParseSessionRole(value string) (SessionRole, error) {
	switch SessionRole(value) {
	case SessionRoleUser:
		return SessionRoleUser, nil
	case SessionRoleAdmin:
		return SessionRoleAdmin, nil
	}
	return "", fmt.Errorf("invalid session role %q", value)
}
