package main

import (
	"errors"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
	"github.com/phanxgames/nodeeditor/imm"
)

var (
	colorTitle  = nodeeditor.RGBA8(255, 220, 120, 255)
	colorPin    = nodeeditor.RGBA8(180, 200, 255, 255)
	colorStatus = nodeeditor.RGBA8(160, 160, 170, 255)
)

// Offsets used to cascade nodes that have no saved location.
const (
	cascadeX = 40.0
	cascadeY = 30.0
	cascadeW = 180.0
)

// game drives one editor through the imm host from the Ebitengine loop.
type game struct {
	ui     *imm.UI
	editor *nodeeditor.Context
	graph  *Graph
	fader  *Fader
	runner *imm.ScriptRunner

	// exitWhenDone ends the loop once the script has run.
	exitWhenDone bool
}

func newGame(ui *imm.UI, editor *nodeeditor.Context, graph *Graph, fader *Fader) *game {
	return &game{ui: ui, editor: editor, graph: graph, fader: fader}
}

func (g *game) setScript(r *imm.ScriptRunner, exitWhenDone bool) {
	g.runner = r
	g.exitWhenDone = exitWhenDone
	g.ui.SetScriptRunner(r)
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.ui.Screenshot("manual")
	}
	g.frame(float32(1 / float64(ebiten.TPS())))
	if g.exitWhenDone && g.runner != nil && g.runner.Done() && g.ui.PendingScreenshots() == 0 {
		return ebiten.Termination
	}
	return nil
}

// frame builds one UI frame: every node of the graph plus a status line.
func (g *game) frame(dt float32) {
	g.ui.NewFrame()
	g.editor.Begin("editor")

	for i, n := range g.graph.Nodes {
		// Position used only for nodes seen for the first time.
		g.ui.SetCursorScreenPos(geom.PointF{
			X: cascadeX + float64(i)*cascadeW,
			Y: cascadeY + float64(i%2)*cascadeY*3,
		})
		g.ui.PushStyleAlpha(g.fadeAlpha(n.ID))
		g.drawNode(n)
		g.ui.PopStyleAlpha()
	}
	for _, l := range g.graph.Links {
		g.editor.Link(l.ID, l.From, l.To, nodeeditor.ColorWhite)
	}

	g.editor.End()
	g.drawStatus()
	g.ui.EndFrame()
	g.fader.Update(dt)
}

// fadeAlpha starts a node's fade once the editor has measured it.
func (g *game) fadeAlpha(id int) float64 {
	if g.editor.Node(id) == nil {
		return 1
	}
	return g.fader.Alpha(id)
}

func (g *game) drawNode(n GraphNode) {
	ed := g.editor
	ed.BeginNode(n.ID)

	ed.BeginHeader()
	g.ui.TextColored(colorTitle, n.Title)
	ed.EndHeader()

	for i, name := range n.Inputs {
		ed.BeginInput(n.InputID(i))
		g.ui.TextColored(colorPin, "-> "+name)
		ed.EndInput()
	}
	for i, name := range n.Outputs {
		ed.BeginOutput(n.OutputID(i))
		g.ui.TextColored(colorPin, name+" ->")
		ed.EndOutput()
	}

	ed.EndNode()
}

func (g *game) drawStatus() {
	opts := g.ui.Options()
	g.ui.SetCursorScreenPos(geom.PointF{X: 4, Y: float64(opts.Height) - 20})
	status := "drag nodes with the left mouse button | F12 screenshot | Esc quit"
	if n := g.editor.ActiveNode(); n != nil {
		status = "dragging node " + strconv.Itoa(n.ID)
	}
	g.ui.TextColored(colorStatus, status)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.ui.Layout()
}

// run opens the window and blocks until it is closed.
func (g *game) run(title string) error {
	w, h := g.ui.Layout()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
