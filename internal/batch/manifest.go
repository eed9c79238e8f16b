package batch

import (
	"encoding/json"
	"os"

	"autoshader/internal/scene"
)

// ManifestEntry represents one material in the output manifest.
type ManifestEntry struct {
	Name      string            `json:"name"`
	Dir       string            `json:"dir"`
	Material  string            `json:"material,omitempty"`
	Textures  map[string]string `json:"textures,omitempty"`
	Connected int               `json:"connected"`
	Assigned  int               `json:"assigned"`
	Error     string            `json:"error,omitempty"`
}

// Manifest is the file written by WriteManifest.
type Manifest struct {
	Materials []ManifestEntry `json:"materials"`
	Scene     *scene.Snapshot `json:"scene,omitempty"`
}

// NewManifest converts results into manifest entries. snap may be nil.
func NewManifest(results []Result, snap *scene.Snapshot) Manifest {
	m := Manifest{Materials: make([]ManifestEntry, len(results)), Scene: snap}
	for i, r := range results {
		e := ManifestEntry{
			Name:      r.Name,
			Dir:       r.Dir,
			Material:  r.Material,
			Connected: r.Connected,
			Assigned:  r.Assigned,
			Error:     r.Error,
		}
		if r.Textures.Len() > 0 {
			e.Textures = make(map[string]string, r.Textures.Len())
			for _, t := range r.Textures.Entries {
				e.Textures[t.Role.String()] = t.Path
			}
		}
		m.Materials[i] = e
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
