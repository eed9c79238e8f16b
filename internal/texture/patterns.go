package texture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RolePatterns lists the filename tokens that identify one role.
type RolePatterns struct {
	Role   Role     `json:"role" yaml:"role"`
	Tokens []string `json:"tokens" yaml:"tokens"`
}

// PatternTable is an ordered, read-only role -> tokens table.
// When a stem matches tokens of several roles, the role listed first wins.
type PatternTable struct {
	entries []RolePatterns
}

type patternFile struct {
	Roles []RolePatterns `json:"roles" yaml:"roles"`
}

// DefaultPatterns returns the built-in table.
func DefaultPatterns() PatternTable {
	t, err := NewPatternTable([]RolePatterns{
		{BaseColor, []string{"basecolor", "color", "albedo", "diffuse", "bc", "base_color", "diff", "col", "base", "alb"}},
		{Metalness, []string{"metalness", "metallic", "metal", "mtl", "met", "metallic_map"}},
		{Roughness, []string{"roughness", "rough", "rgh", "rghns", "specularroughness", "roughness_map"}},
		{Normal, []string{"normal", "nrm", "nor", "nrml", "normalgl", "normal_map", "nmap", "normalmap"}},
		{Bump, []string{"bump", "bmp", "bumpmap", "relief", "bump_map"}},
		{Displacement, []string{"displacement", "disp", "height", "dsp", "hgt", "heightmap", "displace"}},
		{Specular, []string{"specular", "spec", "reflection", "refl", "specular_map", "spec_color"}},
		{Emission, []string{"emission", "emissive", "glow", "emit", "emiss", "selfillum", "emission_map"}},
		{AmbientOcclusion, []string{"ao", "ambient_occlusion", "ambientocclusion", "occlusion"}},
		{Opacity, []string{"opacity", "alpha", "transparent", "transparency", "mask"}},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// NewPatternTable validates entries and returns a table that owns a copy of them.
// Tokens are lower-cased; empty tokens, unknown roles and repeated roles are rejected.
func NewPatternTable(entries []RolePatterns) (PatternTable, error) {
	seen := make(map[Role]bool, len(entries))
	out := make([]RolePatterns, 0, len(entries))
	for _, e := range entries {
		if !e.Role.Valid() {
			return PatternTable{}, fmt.Errorf("texture: pattern table: unknown role %q", e.Role)
		}
		if seen[e.Role] {
			return PatternTable{}, fmt.Errorf("texture: pattern table: role %s listed twice", e.Role)
		}
		seen[e.Role] = true

		tokens := make([]string, 0, len(e.Tokens))
		for _, tok := range e.Tokens {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				return PatternTable{}, fmt.Errorf("texture: pattern table: empty token for %s", e.Role)
			}
			tokens = append(tokens, tok)
		}
		out = append(out, RolePatterns{Role: e.Role, Tokens: tokens})
	}
	return PatternTable{entries: out}, nil
}

// LoadPatterns reads a pattern table from a .yaml/.yml or .json file.
func LoadPatterns(path string) (PatternTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PatternTable{}, fmt.Errorf("texture: read patterns %s: %w", path, err)
	}

	var pf patternFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &pf)
	case ".json":
		err = json.Unmarshal(data, &pf)
	default:
		return PatternTable{}, fmt.Errorf("texture: patterns %s: unsupported format", path)
	}
	if err != nil {
		return PatternTable{}, fmt.Errorf("texture: parse patterns %s: %w", path, err)
	}
	return NewPatternTable(pf.Roles)
}

// Entries returns a copy of the table in order.
func (t PatternTable) Entries() []RolePatterns {
	out := make([]RolePatterns, len(t.entries))
	for i, e := range t.entries {
		out[i] = RolePatterns{Role: e.Role, Tokens: append([]string(nil), e.Tokens...)}
	}
	return out
}

// Len returns the number of roles in the table.
func (t PatternTable) Len() int {
	return len(t.entries)
}
