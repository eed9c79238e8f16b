package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"autoshader/internal/texture"
)

type stubProber map[string]texture.ImageInfo

func (s stubProber) Probe(path string) (texture.ImageInfo, error) {
	switch path {
	case "/t/wall_height.exr":
		return texture.ImageInfo{}, texture.ErrUnsupportedProbe
	case "/t/wall_nrm.png":
		return texture.ImageInfo{}, errors.New("truncated")
	}
	return s[path], nil
}

func wallResult() *texture.Result {
	return &texture.Result{Entries: []texture.Entry{
		{Role: texture.BaseColor, Path: "/t/wall_albedo.png"},
		{Role: texture.Normal, Path: "/t/wall_nrm.png"},
		{Role: texture.Displacement, Path: "/t/wall_height.exr"},
	}}
}

func TestPrintResult_WithoutProber(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, wallResult(), nil)

	assert.Equal(t, "  baseColor        /t/wall_albedo.png\n"+
		"  normal           /t/wall_nrm.png\n"+
		"  displacement     /t/wall_height.exr\n", buf.String())
}

func TestPrintResult_WithProber(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, wallResult(), stubProber{
		"/t/wall_albedo.png": {Path: "/t/wall_albedo.png", Format: "png", Width: 2048, Height: 1024},
	})

	assert.Equal(t, "  baseColor        /t/wall_albedo.png  (png 2048x1024)\n"+
		"  normal           /t/wall_nrm.png  (unreadable: truncated)\n"+
		"  displacement     /t/wall_height.exr\n", buf.String())
}
