package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Role identifies who produced a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Validate checks if the Role is valid
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return nil
	}
	return goerr.New("invalid role", goerr.V("role", r))
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}
