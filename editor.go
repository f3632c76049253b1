package nodeeditor

// currentEditor is the ambient editor used by the package-level functions.
// Plain variable, no locking: the editor is driven from the frame loop only.
var currentEditor *Context

// CreateEditor creates an editor. It does not become current.
func CreateEditor(host Host, cfg Config) *Context {
	return NewContext(host, cfg)
}

// DestroyEditor destroys ctx, clearing the current editor if it is ctx.
func DestroyEditor(ctx *Context) {
	if ctx == nil {
		return
	}
	if currentEditor == ctx {
		currentEditor = nil
	}
	ctx.Destroy()
}

// SetCurrentEditor makes ctx the ambient editor. Switching editors while a
// node is open is not supported.
func SetCurrentEditor(ctx *Context) {
	currentEditor = ctx
}

// CurrentEditor returns the ambient editor, or nil.
func CurrentEditor() *Context {
	return currentEditor
}

func mustCurrent() *Context {
	if currentEditor == nil {
		panic(ErrNoEditor)
	}
	return currentEditor
}

// Begin calls Begin on the current editor.
func Begin(canvasID string) { mustCurrent().Begin(canvasID) }

// End calls End on the current editor.
func End() { mustCurrent().End() }

// BeginNode calls BeginNode on the current editor.
func BeginNode(id int) { mustCurrent().BeginNode(id) }

// EndNode calls EndNode on the current editor.
func EndNode() { mustCurrent().EndNode() }

// BeginHeader calls BeginHeader on the current editor.
func BeginHeader() { mustCurrent().BeginHeader() }

// EndHeader calls EndHeader on the current editor.
func EndHeader() { mustCurrent().EndHeader() }

// BeginInput calls BeginInput on the current editor.
func BeginInput(id int) { mustCurrent().BeginInput(id) }

// EndInput calls EndInput on the current editor.
func EndInput() { mustCurrent().EndInput() }

// BeginOutput calls BeginOutput on the current editor.
func BeginOutput(id int) { mustCurrent().BeginOutput(id) }

// EndOutput calls EndOutput on the current editor.
func EndOutput() { mustCurrent().EndOutput() }

// Link calls Link on the current editor.
func Link(id, startNodeID, endNodeID int, color Color) {
	mustCurrent().Link(id, startNodeID, endNodeID, color)
}
