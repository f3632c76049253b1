package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestFaderLinear(t *testing.T) {
	f := NewFader(1, ease.Linear)

	assert.Equal(t, 0.0, f.Alpha(3))
	assert.Equal(t, 1, f.Running())

	f.Update(0.5)
	assert.InDelta(t, 0.5, f.Alpha(3), 1e-6)

	f.Update(1)
	assert.Equal(t, 1.0, f.Alpha(3))
	assert.Equal(t, 0, f.Running())

	// Finished fades stay opaque.
	f.Update(1)
	assert.Equal(t, 1.0, f.Alpha(3))
}

func TestFaderDisabled(t *testing.T) {
	f := NewFader(0, ease.Linear)
	assert.Equal(t, 1.0, f.Alpha(1))
	assert.Equal(t, 0, f.Running())
}

func TestFaderForget(t *testing.T) {
	f := NewFader(0.2, ease.OutQuad)
	f.Alpha(1)
	f.Update(1)
	assert.Equal(t, 1.0, f.Alpha(1))

	f.Forget(1)
	assert.Equal(t, 0.0, f.Alpha(1))
}
