package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoshader/internal/texture"
)

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"texture_dir": "textures",
		"project_root": "/abs/project",
		"udim": true,
		"workers": 3
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "textures"), cfg.TextureDir)
	assert.Equal(t, "/abs/project", cfg.ProjectRoot)
	assert.True(t, cfg.UDIM)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autoshader.yaml")
	require.NoError(t, os.WriteFile(path, []byte("texture_dir: tex\npatterns_file: patterns.yml\ndebug: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tex"), cfg.TextureDir)
	assert.Equal(t, filepath.Join(dir, "patterns.yml"), cfg.PatternsFile)
	assert.True(t, cfg.Debug)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	cfg := Config{TextureDir: "/from/file", Workers: 2, ProjectRoot: "/p"}
	cfg.Resolve(Flags{TextureDir: "/from/flag", Workers: 5, UDIM: true})

	assert.Equal(t, "/from/flag", cfg.TextureDir)
	assert.Equal(t, 5, cfg.Workers)
	assert.True(t, cfg.UDIM)
	assert.Equal(t, "/p", cfg.ProjectRoot)
	assert.Equal(t, "autoshader", cfg.LogName)
}

func TestResolve_Defaults(t *testing.T) {
	cfg := Config{ProjectRoot: "/p"}
	cfg.Resolve(Flags{})

	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "", cfg.Manifest)
	assert.False(t, cfg.UDIM)
}

func TestResolve_DetectsProjectRoot(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(project, texture.SourceImagesDir), 0755))
	nested := filepath.Join(project, "scenes", "shots")
	require.NoError(t, os.MkdirAll(nested, 0755))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var cfg Config
	cfg.Resolve(Flags{})

	want, err := filepath.EvalSymlinks(project)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPatterns(t *testing.T) {
	cfg := Config{}
	table, err := cfg.Patterns()
	require.NoError(t, err)
	assert.Equal(t, len(texture.Roles()), table.Len())

	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roles:\n  - role: normal\n    tokens: [nrm]\n"), 0644))
	cfg.PatternsFile = path
	table, err = cfg.Patterns()
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}
