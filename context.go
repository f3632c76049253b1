package nodeeditor

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/phanxgames/nodeeditor/geom"
)

// Config configures a Context.
type Config struct {
	// SettingsPath is the JSON file node locations are loaded from and saved
	// to. Empty disables persistence.
	SettingsPath string

	// Logger receives diagnostics. Defaults to a discarding logger, or to a
	// debug-level stderr logger when Debug is set.
	Logger *slog.Logger
	Debug  bool

	// Events optionally receives editor events.
	Events EventSink
}

// Context is the editor: it owns the nodes and their settings and tracks the
// node being authored and the node being dragged. A Context is driven from a
// single goroutine, the one running the host's frame loop; nothing in it is
// safe for concurrent use.
type Context struct {
	host   Host
	logger *slog.Logger
	events EventSink

	nodes    registry
	settings *SettingsStore

	// Node between BeginNode and EndNode, nil otherwise.
	current        *Node
	currentIsNew   bool
	currentDragged bool
	stage          stageMachine

	drag        dragState
	initialized bool
}

// NewContext creates an editor drawing through host. Settings are loaded on
// the first Begin.
func NewContext(host Host, cfg Config) *Context {
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = NewLogger(slog.LevelDebug)
		} else {
			logger = nopLogger()
		}
	}
	return &Context{
		host:     host,
		logger:   logger,
		events:   cfg.Events,
		nodes:    newRegistry(),
		settings: NewSettingsStore(cfg.SettingsPath),
	}
}

// Destroy saves settings (if the editor was ever begun) and releases all
// nodes. The Context must not be used afterwards.
func (c *Context) Destroy() {
	if c.initialized {
		c.saveSettings()
	}
	c.nodes.reset()
	c.drag = dragState{}
	c.current = nil
}

// --- Frame scope ---

// Begin opens the editor canvas for this frame. The first call loads settings.
func (c *Context) Begin(canvasID string) {
	if !c.initialized {
		c.loadSettings()
		c.initialized = true
	}
	c.host.BeginChild(canvasID, ChildBorder|ChildNoScrollbar|ChildNoMove)
}

// End closes the canvas and writes settings if any node changed this frame.
func (c *Context) End() {
	c.host.EndChild()
	if c.settings.takeDirty() {
		c.saveSettings()
	}
}

// --- Node scope ---

// BeginNode starts node id, creating it on first sight. Panics with
// ErrNodeAlreadyOpen if another node is open.
func (c *Context) BeginNode(id int) {
	if c.current != nil {
		panic(fmt.Errorf("%w: node %d is open, BeginNode(%d)", ErrNodeAlreadyOpen, c.current.ID, id))
	}

	isNew := false
	n := c.nodes.find(id)
	if n == nil {
		var err error
		n, err = c.nodes.create(id, c.settings, c.host.CursorScreenPos())
		if err != nil {
			panic(err)
		}
		// Invisible on its first frame while its natural size is measured.
		c.host.PushStyleAlpha(0)
		isNew = true
		c.logf("created node %d at (%d, %d)", id, n.Bounds.Location.X, n.Bounds.Location.Y)
		c.emit(Event{Type: EventNodeCreated, NodeID: id, Location: n.Bounds.Location})
	}

	c.host.PushID(id)

	c.current = n
	c.currentIsNew = isNew
	c.currentDragged = c.drag.active == n

	c.host.SetCursorScreenPos(n.Bounds.Location.ToPointF().Add(c.drag.drawOffset(n)))

	c.setStage(StageBegin)
}

// EndNode finishes the open node: closes its layout, commits its measured
// bounds, and runs drag handling. Panics with ErrNoNodeOpen if no node is open.
func (c *Context) EndNode() {
	n := c.requireNode("EndNode")

	// Never opened a body row; open it so End closes what it expects.
	if c.stage.current == StageBegin || c.stage.current == StageHeader {
		c.setStage(StageContent)
	}
	c.setStage(StageEnd)

	measured := c.host.ItemRect().ToRect()
	committed := measured
	if c.currentDragged {
		committed.Location = n.Bounds.Location
	}
	if committed != n.Bounds {
		c.settings.MarkDirty()
		n.Bounds = committed
	}

	c.host.PopID()
	if c.currentIsNew {
		c.host.PopStyleAlpha()
	}

	c.host.SetCursorScreenPos(measured.Location.ToPointF())
	c.host.InvisibleButton(strconv.Itoa(n.ID), measured.Size.ToSizeF())

	if !c.currentIsNew {
		c.interact(n)
	}

	c.current = nil
	c.currentIsNew = false
	c.currentDragged = false
	c.setStage(StageInvalid)
}

// interact applies the result of the hit-test control just submitted for n.
func (c *Context) interact(n *Node) {
	held := c.host.IsItemActive()
	var delta geom.PointF
	if held {
		delta = c.host.MouseDragDelta(MouseButtonLeft, 0)
	}
	started, committed := c.drag.update(n, held, delta)
	switch {
	case started:
		c.logf("drag start node %d", n.ID)
		c.emit(Event{Type: EventDragStart, NodeID: n.ID, Location: n.Bounds.Location, Offset: delta})
	case committed:
		c.settings.MarkDirty()
		c.logf("drag end node %d at (%d, %d)", n.ID, n.Bounds.Location.X, n.Bounds.Location.Y)
		c.emit(Event{Type: EventDragEnd, NodeID: n.ID, Location: n.Bounds.Location})
	}
}

// BeginHeader enters the header row.
func (c *Context) BeginHeader() {
	c.requireNode("BeginHeader")
	c.setStage(StageHeader)
}

// EndHeader leaves the header row for the body.
func (c *Context) EndHeader() {
	c.requireNode("EndHeader")
	c.setStage(StageContent)
}

// BeginInput enters the input column. Callable straight after BeginNode.
func (c *Context) BeginInput(id int) {
	c.requireNode("BeginInput")
	if c.stage.current == StageBegin {
		c.setStage(StageContent)
	}
	c.setStage(StageInput)
}

// EndInput ends one input entry.
func (c *Context) EndInput() {
	c.requireNode("EndInput")
	c.host.Spring(0, DefaultSpacing)
}

// BeginOutput enters the output column. Callable straight after BeginNode.
func (c *Context) BeginOutput(id int) {
	c.requireNode("BeginOutput")
	if c.stage.current == StageBegin {
		c.setStage(StageContent)
	}
	if c.stage.current == StageBegin {
		c.setStage(StageInput)
	}
	c.setStage(StageOutput)
}

// EndOutput ends one output entry.
func (c *Context) EndOutput() {
	c.requireNode("EndOutput")
	c.host.Spring(0, DefaultSpacing)
}

// Link declares a link between two nodes. Links are not rendered.
func (c *Context) Link(id, startNodeID, endNodeID int, color Color) {}

// --- Nodes ---

// Node returns the node with id, or nil.
func (c *Context) Node(id int) *Node {
	return c.nodes.find(id)
}

// Nodes returns the live nodes in creation order.
func (c *Context) Nodes() []*Node {
	return c.nodes.all()
}

// DestroyNode removes n from the editor. A nil node is a no-op; a node not
// owned by this editor panics with ErrUnknownNode. The node's settings row is
// kept.
func (c *Context) DestroyNode(n *Node) {
	if err := c.nodes.destroy(n); err != nil {
		panic(err)
	}
	if n == nil {
		return
	}
	c.drag.release(n)
	c.logf("destroyed node %d", n.ID)
	c.emit(Event{Type: EventNodeDestroyed, NodeID: n.ID, Location: n.Bounds.Location})
}

// ActiveNode returns the node being dragged, or nil.
func (c *Context) ActiveNode() *Node { return c.drag.active }

// DragOffset returns the active node's current drag offset.
func (c *Context) DragOffset() geom.PointF { return c.drag.offset }

// CurrentNode returns the node between BeginNode and EndNode, or nil.
func (c *Context) CurrentNode() *Node { return c.current }

// Stage returns the current node stage.
func (c *Context) Stage() Stage { return c.stage.current }

// Settings returns the settings store.
func (c *Context) Settings() *SettingsStore { return c.settings }

// --- Internal ---

func (c *Context) requireNode(op string) *Node {
	if c.current == nil {
		panic(fmt.Errorf("%w: %s", ErrNoNodeOpen, op))
	}
	return c.current
}

func (c *Context) setStage(stage Stage) bool {
	from := c.stage.current
	if stage != from && !inOrder(from, stage) {
		c.logf("out of order stage %s -> %s", from, stage)
	}
	return c.stage.set(c.host, c.current, stage)
}

func (c *Context) loadSettings() {
	if err := c.settings.Load(); err != nil {
		c.logf("load settings: %v", err)
		return
	}
	if c.settings.Path() != "" {
		c.emit(Event{Type: EventSettingsLoaded, Count: len(c.settings.Rows())})
	}
}

func (c *Context) saveSettings() {
	if err := c.settings.Save(c.nodes.all()); err != nil {
		c.logf("save settings: %v", err)
		return
	}
	if c.settings.Path() != "" {
		c.emit(Event{Type: EventSettingsSaved, Count: len(c.settings.Rows())})
	}
}
