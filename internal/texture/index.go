package texture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrDirectoryNotFound is returned when a texture root does not exist.
	ErrDirectoryNotFound = errors.New("texture directory not found")
	// ErrNotDirectory is returned when a texture root is a regular file.
	ErrNotDirectory = errors.New("texture root is not a directory")
)

// AllowedExtensions lists the image extensions considered during a scan.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".tga", ".exr", ".hdr", ".tx"}

// Candidate is an image file found under a texture root.
type Candidate struct {
	Name string // base file name
	Path string // absolute path
}

// Stem returns the lower-cased file name without its extension.
func (c Candidate) Stem() string {
	return Stem(c.Name)
}

// Stem lower-cases name and strips its extension.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// IsAllowed reports whether name carries one of AllowedExtensions (any case).
func IsAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// ScanCandidates walks root and returns every image file, sorted by
// (directory, filename) so that processing order is independent of the
// order the filesystem lists entries in.
func ScanCandidates(root string) ([]Candidate, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("texture: resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("texture: scan %s: %w", root, ErrDirectoryNotFound)
		}
		return nil, fmt.Errorf("texture: scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("texture: scan %s: %w", root, ErrNotDirectory)
	}

	var out []Candidate
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		// Unreadable sub-directories are skipped, not fatal.
		if err != nil || d.IsDir() {
			return nil
		}
		if !IsAllowed(d.Name()) {
			return nil
		}
		out = append(out, Candidate{Name: d.Name(), Path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: scan %s: %w", root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := filepath.Dir(out[i].Path), filepath.Dir(out[j].Path)
		if di != dj {
			return di < dj
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
