package providers

import "fmt"

type Role int

const (
	Primary Role = iota + 1
	Secondary
)

func (r Role) String() string {
	switch r {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	return "unknown"
}

// NewRole parses a role name. Unknown names yield an invalid role.
func NewRole(s string) Role {
	switch s {
	case "primary":
		return Primary
	case "secondary":
		return Secondary
	}
	return 0
}

func (r Role) Validate() error {
	if r != Primary && r != Secondary {
		return fmt.Errorf("role must be primary or secondary")
	}
	return nil
}
