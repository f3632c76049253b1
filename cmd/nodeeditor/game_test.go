package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
	"github.com/phanxgames/nodeeditor/imm"
)

type stillPointer struct{}

func (stillPointer) CursorPosition() geom.PointF                      { return geom.PointF{X: -1, Y: -1} }
func (stillPointer) IsMouseButtonPressed(nodeeditor.MouseButton) bool { return false }

func newTestGame(t *testing.T, settings string, fade float32) *game {
	t.Helper()
	ui := imm.New(imm.Options{Width: 800, Height: 400, Input: stillPointer{}})
	ed := nodeeditor.NewContext(ui, nodeeditor.Config{SettingsPath: settings})
	return newGame(ui, ed, DefaultGraph(), NewFader(fade, ease.Linear))
}

func TestGameFrameCreatesGraphNodes(t *testing.T) {
	g := newTestGame(t, "", 0)
	g.frame(1.0 / 60)

	nodes := g.editor.Nodes()
	require.Len(t, nodes, 4)
	for i, n := range nodes {
		assert.Equal(t, DefaultGraph().Nodes[i].ID, n.ID)
	}
	// Cascaded start positions.
	assert.Equal(t, geom.Point{X: 40, Y: 30}, nodes[0].Bounds.Location)
	assert.Equal(t, geom.Point{X: 220, Y: 120}, nodes[1].Bounds.Location)
}

func TestGameFrameMeasuresNodes(t *testing.T) {
	g := newTestGame(t, "", 0)
	g.frame(1.0 / 60)
	g.frame(1.0 / 60)

	for _, n := range g.editor.Nodes() {
		assert.Positive(t, n.Bounds.Size.W, "node %d", n.ID)
		assert.Positive(t, n.Bounds.Size.H, "node %d", n.ID)
	}
	assert.Nil(t, g.editor.ActiveNode())
	assert.Positive(t, g.ui.DrawCount())
}

func TestGameFadesNodesInAfterFirstFrame(t *testing.T) {
	g := newTestGame(t, "", 0.1)

	g.frame(1.0 / 60)
	assert.Equal(t, 0, g.fader.Running(), "no fade before a node is measured")

	g.frame(1.0 / 60)
	assert.Equal(t, 4, g.fader.Running())

	for range 10 {
		g.frame(1.0 / 60)
	}
	assert.Equal(t, 0, g.fader.Running())
	assert.Equal(t, 1.0, g.fader.Alpha(1))
}

func TestGameKeepsSavedLocations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NodeEditor.json")
	store := nodeeditor.NewSettingsStore(path)
	store.Add(3).Location = geom.Point{X: 500, Y: 60}
	require.NoError(t, store.Save(nil))

	g := newTestGame(t, path, 0)
	g.frame(1.0 / 60)

	n := g.editor.Node(3)
	require.NotNil(t, n)
	assert.Equal(t, geom.Point{X: 500, Y: 60}, n.Bounds.Location)
}

func TestNewGameFromOptions(t *testing.T) {
	opts := &RunOptions{RootOptions: &RootOptions{}, Width: 320, Height: 200, Scale: 1}
	g, err := newGameFromOptions(opts)
	require.NoError(t, err)
	assert.Len(t, g.graph.Nodes, 4)
	assert.Nil(t, g.runner)

	opts.Script = filepath.Join(t.TempDir(), "missing.json")
	_, err = newGameFromOptions(opts)
	assert.ErrorContains(t, err, "read script")
}
