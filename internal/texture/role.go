package texture

import (
	"fmt"
	"strings"
)

// Role is the semantic purpose of a texture file.
type Role string

const (
	BaseColor        Role = "baseColor"
	Metalness        Role = "metalness"
	Roughness        Role = "roughness"
	Normal           Role = "normal"
	Bump             Role = "bump"
	Displacement     Role = "displacement"
	Specular         Role = "specular"
	Emission         Role = "emission"
	AmbientOcclusion Role = "ambientOcclusion"
	Opacity          Role = "opacity"
)

var allRoles = []Role{
	BaseColor, Metalness, Roughness, Normal, Bump,
	Displacement, Specular, Emission, AmbientOcclusion, Opacity,
}

// Roles returns every role in table order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole resolves a role name case-insensitively. "ao" is accepted
// as a short form of ambientOcclusion.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "ao" {
		return AmbientOcclusion, nil
	}
	for _, r := range allRoles {
		if strings.ToLower(string(r)) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("texture: unknown role %q", s)
}
