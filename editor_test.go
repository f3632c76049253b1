package nodeeditor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmbientAPIWithoutEditorPanics(t *testing.T) {
	SetCurrentEditor(nil)
	err := recoverError(func() { BeginNode(1) })
	require.ErrorIs(t, err, ErrNoEditor)
}

func TestAmbientAPIDelegatesToCurrent(t *testing.T) {
	h := newFakeHost()
	ctx := CreateEditor(h, Config{})
	assert.Nil(t, CurrentEditor(), "CreateEditor does not make the editor current")

	SetCurrentEditor(ctx)
	t.Cleanup(func() { SetCurrentEditor(nil) })

	Begin("canvas")
	BeginNode(3)
	BeginHeader()
	EndHeader()
	BeginInput(31)
	EndInput()
	BeginOutput(32)
	EndOutput()
	Link(1, 3, 4, ColorWhite)
	assert.Equal(t, StageOutput, ctx.Stage())
	EndNode()
	End()

	require.NotNil(t, ctx.Node(3))
	assert.Equal(t, 1, h.count("BeginChild(canvas)"))
	assert.Equal(t, 1, h.count("EndChild"))
}

func TestDestroyEditorClearsCurrent(t *testing.T) {
	a := CreateEditor(newFakeHost(), Config{})
	b := CreateEditor(newFakeHost(), Config{})

	SetCurrentEditor(a)
	DestroyEditor(b)
	assert.Equal(t, a, CurrentEditor(), "destroying another editor keeps the current one")

	DestroyEditor(a)
	assert.Nil(t, CurrentEditor())

	require.NotPanics(t, func() { DestroyEditor(nil) })
}
