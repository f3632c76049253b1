package imm

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/geom"
)

var _ nodeeditor.Host = (*UI)(nil)

// UI is an immediate-mode UI context. It is driven from the Ebitengine game
// loop and is not safe for concurrent use.
type UI struct {
	opts  Options
	frame uint64

	// Input
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner

	// Items
	cursor     geom.PointF
	lastItem   geom.RectF
	lastItemID uint64
	hoveredID  uint64
	activeID   uint64
	activeSeen bool
	releasedID uint64

	// Stacks
	ids      idStack
	groups   []*group
	layouts  map[uint64]*groupCache
	alpha    []float64
	children []childRegion

	// Output
	draws           []drawCmd
	logs            []string
	screenshotQueue []string
	textCache       map[string]*ebiten.Image
	fps             fpsOverlay
}

type childRegion struct {
	id    uint64
	rect  geom.RectF
	flags nodeeditor.ChildFlags
}

// New creates a UI.
func New(opts Options) *UI {
	return &UI{
		opts:      opts.withDefaults(),
		layouts:   make(map[uint64]*groupCache),
		textCache: make(map[string]*ebiten.Image),
	}
}

// Options returns the options in effect, defaults applied.
func (u *UI) Options() Options { return u.opts }

// Frame returns the number of frames begun.
func (u *UI) Frame() uint64 { return u.frame }

// SetScriptRunner attaches a script. Its steps run at the start of NewFrame,
// before input is polled.
func (u *UI) SetScriptRunner(r *ScriptRunner) { u.runner = r }

// NewFrame starts a frame: advances the script, polls input and resets the
// draw list.
func (u *UI) NewFrame() {
	u.frame++
	if u.runner != nil {
		u.runner.step(u)
	}
	u.pollInput()

	left := u.pointer.buttons[nodeeditor.MouseButtonLeft]
	u.releasedID = 0
	if !left.down && u.activeID != 0 {
		u.releasedID = u.activeID
		u.activeID = 0
	}
	u.activeSeen = false

	u.draws = u.draws[:0]
	u.cursor = geom.PointF{}
	u.lastItem = geom.RectF{}
	u.lastItemID = 0
	u.hoveredID = 0
	u.fps.update(1 / float64(ebiten.TPS()))
}

// EndFrame finishes a frame. A press this frame activates the topmost item
// under the pointer; it reports active from the next frame on.
func (u *UI) EndFrame() {
	u.checkBalanced()

	left := u.pointer.buttons[nodeeditor.MouseButtonLeft]
	switch {
	case left.pressed && u.activeID == 0 && u.hoveredID != 0:
		u.activeID = u.hoveredID
	case u.activeID != 0 && !u.activeSeen:
		// The active item was not submitted this frame.
		u.activeID = 0
	}

	u.pruneLayouts()
}

// --- Child regions ---

// BeginChild opens a region from the cursor to the bottom-right of the canvas.
// Items outside it are not hovered.
func (u *UI) BeginChild(id string, flags nodeeditor.ChildFlags) {
	key := u.ids.hash(id)
	lo := u.cursor
	hi := geom.PointF{X: float64(u.opts.Width), Y: float64(u.opts.Height)}.Max(lo)
	u.children = append(u.children, childRegion{id: key, rect: geom.RectF{Min: lo, Max: hi}, flags: flags})
	u.ids.push(key)
}

// EndChild closes the region opened by BeginChild.
func (u *UI) EndChild() {
	if len(u.children) == 0 {
		panic("imm: EndChild without matching BeginChild")
	}
	c := u.children[len(u.children)-1]
	if c.flags&nodeeditor.ChildBorder != 0 {
		u.addDraw(drawCmd{kind: drawRect, a: c.rect.Min, b: c.rect.Max, color: borderColor})
	}
	u.children = u.children[:len(u.children)-1]
	u.ids.pop()
	u.cursor = geom.PointF{X: c.rect.Min.X, Y: c.rect.Max.Y + u.opts.ItemSpacing}
}

var borderColor = nodeeditor.Color{R: 0.43, G: 0.43, B: 0.5, A: 0.5}

func (u *UI) clip() (geom.RectF, bool) {
	if len(u.children) == 0 {
		return geom.RectF{}, false
	}
	return u.children[len(u.children)-1].rect, true
}

// --- Cursor ---

// CursorScreenPos returns where the next item will be placed.
func (u *UI) CursorScreenPos() geom.PointF {
	if g := u.topGroup(); g != nil {
		off := g.used
		if g.items > 0 && !g.afterSpring {
			off += u.opts.ItemSpacing
		}
		return g.origin.Add(g.axis.point(off, 0))
	}
	return u.cursor
}

// SetCursorScreenPos moves the cursor used outside of groups.
func (u *UI) SetCursorScreenPos(p geom.PointF) { u.cursor = p }

// --- Id and style stacks ---

// PushID scopes the ids of the following items with id.
func (u *UI) PushID(id int) { u.ids.pushInt(id) }

// PopID removes the scope pushed by PushID.
func (u *UI) PopID() {
	if !u.ids.pop() {
		panic("imm: PopID without matching PushID")
	}
}

// PushStyleAlpha multiplies the opacity of what is drawn until PopStyleAlpha.
func (u *UI) PushStyleAlpha(alpha float64) { u.alpha = append(u.alpha, alpha) }

// PopStyleAlpha removes the alpha pushed by PushStyleAlpha.
func (u *UI) PopStyleAlpha() {
	if len(u.alpha) == 0 {
		panic("imm: PopStyleAlpha without matching PushStyleAlpha")
	}
	u.alpha = u.alpha[:len(u.alpha)-1]
}

// Alpha returns the current style alpha.
func (u *UI) Alpha() float64 {
	a := 1.0
	for _, v := range u.alpha {
		a *= v
	}
	return a
}

// --- Log ---

// LogText appends a line to the in-app log, keeping the most recent lines.
func (u *UI) LogText(text string) {
	if len(u.logs) == maxLogLines {
		copy(u.logs, u.logs[1:])
		u.logs = u.logs[:maxLogLines-1]
	}
	u.logs = append(u.logs, text)
	if u.opts.Debug {
		_, _ = fmt.Fprintf(os.Stderr, "[imm] %s\n", text)
	}
}

// LogLines returns the in-app log, oldest first.
func (u *UI) LogLines() []string {
	return append([]string(nil), u.logs...)
}
