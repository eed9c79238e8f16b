package texture

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceImagesDir is the conventional texture folder inside a project root.
const SourceImagesDir = "sourceimages"

// Resolver picks the texture directory to scan and remembers the last one used.
type Resolver struct {
	last string
}

// Last returns the cached directory, or "" if none was resolved yet.
func (r *Resolver) Last() string {
	return r.last
}

// Resolve returns the first existing directory among: explicit, the cached
// last-used directory, and projectRoot/sourceimages.
func (r *Resolver) Resolve(explicit, projectRoot string) (string, error) {
	candidates := []string{explicit, r.last}
	if projectRoot != "" {
		candidates = append(candidates, filepath.Join(projectRoot, SourceImagesDir))
	}
	for _, dir := range candidates {
		if dir == "" || !isDir(dir) {
			continue
		}
		r.last = dir
		return dir, nil
	}
	if explicit != "" {
		return "", fmt.Errorf("texture: resolve %s: %w", explicit, ErrDirectoryNotFound)
	}
	return "", fmt.Errorf("texture: resolve: %w", ErrDirectoryNotFound)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
