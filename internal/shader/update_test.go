package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoshader/internal/scene"
	"autoshader/internal/texture"
)

func writeFiles(t *testing.T, names ...string) map[string]string {
	t.Helper()
	dir := t.TempDir()
	out := make(map[string]string, len(names))
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		out[n] = p
	}
	return out
}

func buildRock(t *testing.T, s *scene.Memory) BuildResult {
	t.Helper()
	s.AddObject("pCube1")
	res, err := NewBuilder(s, nil).Build("Rock", result(
		texture.Entry{Role: texture.BaseColor, Path: "/old/bc.png"},
		texture.Entry{Role: texture.Roughness, Path: "/old/r.png"},
		texture.Entry{Role: texture.Normal, Path: "/old/n.png"},
		texture.Entry{Role: texture.Displacement, Path: "/old/d.exr"},
	), []string{"pCube1"}, false)
	require.NoError(t, err)
	return res
}

func TestUpdate_RewritesPathsWithoutTouchingTopology(t *testing.T) {
	s := scene.NewMemory()
	built := buildRock(t, s)
	before := s.Connections()
	nodesBefore := s.Nodes()

	files := writeFiles(t, "bc2.png", "r2.png", "n2.png", "d2.exr")
	n, err := NewBuilder(s, nil).Update(built.Material, map[texture.Role]string{
		texture.BaseColor:    files["bc2.png"],
		texture.Roughness:    files["r2.png"],
		texture.Normal:       files["n2.png"],
		texture.Displacement: files["d2.exr"],
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Equal(t, before, s.Connections())
	assert.Equal(t, nodesBefore, s.Nodes())

	assert.Equal(t, files["bc2.png"], attr(t, s, "Rock_baseColor", AttrFileTextureName))
	assert.Equal(t, files["n2.png"], attr(t, s, "Rock_normal", AttrFileTextureName))
	assert.Equal(t, files["d2.exr"], attr(t, s, "Rock_displacement", AttrFileTextureName))
	assert.Equal(t, TilingUDIM, attr(t, s, "Rock_roughness", AttrUVTilingMode))
	// Color space is left alone.
	assert.Equal(t, ColorSpaceSRGB, attr(t, s, "Rock_baseColor", AttrColorSpace))

	notes := s.Notifications()
	assert.Equal(t, "Updated 4 texture maps on 'Rock_SHD'", notes[len(notes)-1])
}

func TestUpdate_SkipsUnresolvableRoles(t *testing.T) {
	s := scene.NewMemory()
	built := buildRock(t, s)
	before := s.Connections()

	files := writeFiles(t, "m.png", "e.png", "ao.png", "bc2.png")
	n, err := NewBuilder(s, nil).Update(built.Material, map[texture.Role]string{
		texture.Metalness:        files["m.png"],  // never wired
		texture.Emission:         files["e.png"],  // never wired
		texture.AmbientOcclusion: files["ao.png"], // no wiring at all
		texture.BaseColor:        files["bc2.png"],
	}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, before, s.Connections())
	assert.False(t, s.Exists("Rock_metalness"))
}

func TestUpdate_SkipsMissingFiles(t *testing.T) {
	s := scene.NewMemory()
	built := buildRock(t, s)

	n, err := NewBuilder(s, nil).Update(built.Material, map[texture.Role]string{
		texture.BaseColor: filepath.Join(t.TempDir(), "gone.png"),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "/old/bc.png", attr(t, s, "Rock_baseColor", AttrFileTextureName))
}

func TestUpdate_MaterialNotFound(t *testing.T) {
	s := scene.NewMemory()
	built := buildRock(t, s)
	b := NewBuilder(s, nil)

	_, err := b.Update("Nope_SHD", nil, false)
	assert.ErrorIs(t, err, ErrMaterialNotFound)

	// A node that exists but is not a base shader does not count.
	_, err = b.Update(built.Binding, nil, false)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestUpdate_BumpDoesNotFollowNormalMapChain(t *testing.T) {
	s := scene.NewMemory()
	built := buildRock(t, s)

	files := writeFiles(t, "b.png")
	n, err := NewBuilder(s, nil).Update(built.Material, map[texture.Role]string{
		texture.Bump: files["b.png"],
	}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "/old/n.png", attr(t, s, "Rock_normal", AttrFileTextureName))
}

func TestUpdate_BumpDoesNotFollowNormalFallbackChain(t *testing.T) {
	s := scene.NewMemory().WithoutNodeTypes(NormalMapNodeType)
	s.AddObject("pPlane1")
	built, err := NewBuilder(s, nil).Build("Tile", result(texture.Entry{Role: texture.Normal, Path: "/t/n.png"}), []string{"pPlane1"}, false)
	require.NoError(t, err)
	// The normal map goes through aiBump2d here, the same node type bump uses.
	require.True(t, s.Exists("Tile_normal_bump2d"))

	b := NewBuilder(s, nil)
	files := writeFiles(t, "b.png", "n2.png")
	n, err := b.Update(built.Material, map[texture.Role]string{texture.Bump: files["b.png"]}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "/t/n.png", attr(t, s, "Tile_normal", AttrFileTextureName))

	n, err = b.Update(built.Material, map[texture.Role]string{texture.Normal: files["n2.png"]}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, files["n2.png"], attr(t, s, "Tile_normal", AttrFileTextureName))
}

func TestFindFileNode_BumpChain(t *testing.T) {
	s := scene.NewMemory()
	s.AddObject("pPlane1")
	built, err := NewBuilder(s, nil).Build("Tile", result(texture.Entry{Role: texture.Bump, Path: "/t/b.png"}), []string{"pPlane1"}, false)
	require.NoError(t, err)

	file, ok := FindFileNode(s, built.Material, texture.Bump)
	require.True(t, ok)
	assert.Equal(t, "Tile_bump", file)

	_, ok = FindFileNode(s, built.Material, texture.Normal)
	assert.False(t, ok)
}

func TestFindFileNode_FallbackChain(t *testing.T) {
	s := scene.NewMemory().WithoutNodeTypes(NormalMapNodeType)
	s.AddObject("pPlane1")
	built, err := NewBuilder(s, nil).Build("Tile", result(texture.Entry{Role: texture.Normal, Path: "/t/n.png"}), []string{"pPlane1"}, false)
	require.NoError(t, err)

	file, ok := FindFileNode(s, built.Material, texture.Normal)
	require.True(t, ok)
	assert.Equal(t, "Tile_normal", file)
}

func TestMaterialOf(t *testing.T) {
	s := scene.NewMemory()
	built := buildRock(t, s)
	s.AddObject("pSphere1")

	m, ok := MaterialOf(s, "pCube1")
	require.True(t, ok)
	assert.Equal(t, built.Material, m)

	_, ok = MaterialOf(s, "pSphere1")
	assert.False(t, ok)
	_, ok = MaterialOf(s, "ghost")
	assert.False(t, ok)
}
