package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters("autoshader", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("built %s", "Wall_SHD")
	l.Warnf("skipping %s", "bump")
	l.Errorf("boom")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[autoshader] INFO: built Wall_SHD")
	assert.Contains(t, errOut.String(), "[autoshader] WARN: skipping bump")
	assert.Contains(t, errOut.String(), "[autoshader] ERROR: boom")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	assert.Contains(t, out.String(), "DEBUG: shown 2")
}

func TestDefaultLogger_NoPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewWithWriters("", false, &out, &out)
	l.Infof("plain")
	assert.Contains(t, out.String(), "INFO: plain")
	assert.NotContains(t, out.String(), "[")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
	l.Infof("nothing")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}
