package texture

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedProbe is returned for allowed formats without a header decoder (exr, hdr, tx).
var ErrUnsupportedProbe = errors.New("no header decoder for format")

// ImageInfo describes a texture file without decoding its pixels.
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

type headerDecoder struct {
	format string
	decode func(io.Reader) (image.Config, error)
}

// Decoders are picked by extension; TGA has no magic number to sniff.
var headerDecoders = map[string]headerDecoder{
	".png":  {"png", png.DecodeConfig},
	".jpg":  {"jpeg", jpeg.DecodeConfig},
	".jpeg": {"jpeg", jpeg.DecodeConfig},
	".tga":  {"tga", tga.DecodeConfig},
	".tif":  {"tiff", tiff.DecodeConfig},
	".tiff": {"tiff", tiff.DecodeConfig},
}

// Probe reads only the image header of path.
func Probe(path string) (ImageInfo, error) {
	dec, ok := headerDecoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return ImageInfo{}, fmt.Errorf("texture: probe %s: %w", path, ErrUnsupportedProbe)
	}

	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := dec.decode(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("texture: decode header %s: %w", path, err)
	}
	return ImageInfo{Path: path, Format: dec.format, Width: cfg.Width, Height: cfg.Height}, nil
}
