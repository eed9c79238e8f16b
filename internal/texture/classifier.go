package texture

import "strings"

// Entry is one classified texture.
type Entry struct {
	Role Role
	Path string
}

// Result maps roles to files. It holds at most one path per role and keeps
// roles in the order their files were processed.
type Result struct {
	Entries []Entry
}

// Path returns the file assigned to role.
func (r *Result) Path(role Role) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, e := range r.Entries {
		if e.Role == role {
			return e.Path, true
		}
	}
	return "", false
}

// Len returns the number of filled roles.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

// Roles returns the filled roles in insertion order.
func (r *Result) Roles() []Role {
	if r == nil {
		return nil
	}
	out := make([]Role, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Role
	}
	return out
}

// Map returns the result as a plain map.
func (r *Result) Map() map[Role]string {
	m := make(map[Role]string, r.Len())
	if r == nil {
		return m
	}
	for _, e := range r.Entries {
		m[e.Role] = e.Path
	}
	return m
}

// Replace sets role to path, overwriting any existing assignment in place.
func (r *Result) Replace(role Role, path string) {
	for i, e := range r.Entries {
		if e.Role == role {
			r.Entries[i].Path = path
			return
		}
	}
	r.Entries = append(r.Entries, Entry{Role: role, Path: path})
}

// Classifier assigns texture files to roles using a fixed pattern table.
type Classifier struct {
	patterns PatternTable
}

// NewClassifier returns a classifier over patterns.
func NewClassifier(patterns PatternTable) *Classifier {
	return &Classifier{patterns: patterns}
}

// Classify scans root and classifies every image file found.
// A missing root yields ErrDirectoryNotFound; an empty root yields an empty result.
func (c *Classifier) Classify(root string) (*Result, error) {
	files, err := ScanCandidates(root)
	if err != nil {
		return nil, err
	}
	return c.ClassifyCandidates(files), nil
}

// ClassifyCandidates classifies files in the given order. The first file
// matching a role claims it, and each file claims at most one role.
func (c *Classifier) ClassifyCandidates(files []Candidate) *Result {
	res := &Result{}
	filled := make(map[Role]bool, c.patterns.Len())

	for _, f := range files {
		stem := f.Stem()
		for _, rp := range c.patterns.entries {
			if filled[rp.Role] {
				continue
			}
			if matchAny(rp.Tokens, stem) {
				res.Entries = append(res.Entries, Entry{Role: rp.Role, Path: f.Path})
				filled[rp.Role] = true
				break
			}
		}
		if len(filled) == c.patterns.Len() {
			break
		}
	}
	return res
}

func matchAny(tokens []string, stem string) bool {
	for _, tok := range tokens {
		if Match(tok, stem) {
			return true
		}
	}
	return false
}

// Match reports whether token appears in stem as a whole segment delimited
// by underscores or hyphens. Both are compared lower-cased, so "ao" matches
// "floor_ao" and "ao-floor" but not "chaos_map".
func Match(token, stem string) bool {
	p, f := strings.ToLower(token), strings.ToLower(stem)
	if p == "" {
		return false
	}
	return p == f ||
		strings.HasPrefix(f, p+"_") || strings.HasPrefix(f, p+"-") ||
		strings.HasSuffix(f, "_"+p) || strings.HasSuffix(f, "-"+p) ||
		strings.Contains(f, "_"+p+"_") || strings.Contains(f, "-"+p+"-")
}
