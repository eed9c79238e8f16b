package texture

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))))
}

// writeTGA writes an uncompressed 24-bit true-color TGA.
func writeTGA(t *testing.T, path string, w, h int) {
	t.Helper()
	header := []byte{
		0, 0, 2, // id length, no color map, true-color
		0, 0, 0, 0, 0, // color map fields
		0, 0, 0, 0, // x/y origin
		byte(w), byte(w >> 8), byte(h), byte(h >> 8),
		24, 0,
	}
	data := append(header, make([]byte, w*h*3)...)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestProbe_PNG(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wall_basecolor.png")
	writePNG(t, p, 64, 32)

	info, err := Probe(p)
	require.NoError(t, err)
	assert.Equal(t, ImageInfo{Path: p, Format: "png", Width: 64, Height: 32}, info)
}

func TestProbe_TGA(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wall_rough.TGA")
	writeTGA(t, p, 4, 2)

	info, err := Probe(p)
	require.NoError(t, err)
	assert.Equal(t, "tga", info.Format)
	assert.Equal(t, 4, info.Width)
	assert.Equal(t, 2, info.Height)
}

func TestProbe_Unsupported(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sky.exr")
	require.NoError(t, os.WriteFile(p, []byte("v/1\x01"), 0644))

	_, err := Probe(p)
	assert.ErrorIs(t, err, ErrUnsupportedProbe)
}

func TestProbe_Corrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(p, []byte("not a png"), 0644))

	_, err := Probe(p)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedProbe)
}

func TestProbeCache_CachesResults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a_normal.png")
	writePNG(t, p, 8, 8)

	c := NewProbeCache()
	first, err := c.Probe(p)
	require.NoError(t, err)

	// The cached header survives the file changing on disk.
	writePNG(t, p, 16, 16)
	second, err := c.Probe(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())
}
