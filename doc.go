// Package nodeeditor is a node-graph editing widget for immediate-mode UI
// hosts.
//
// The editor renders a canvas of draggable nodes, each laid out as a header
// bar above a two-column body of inputs and outputs. Node locations are kept
// in a small JSON settings file so a layout survives restarts.
//
// # Quick start
//
// Create a [Context] over a [Host] (the [imm] package provides one on
// Ebitengine), then drive it once per frame:
//
//	ed := nodeeditor.CreateEditor(ui, nodeeditor.Config{SettingsPath: "NodeEditor.json"})
//	defer nodeeditor.DestroyEditor(ed)
//
//	ed.Begin("canvas")
//	ed.BeginNode(1)
//	ed.BeginHeader()
//	ui.Text("Add")
//	ed.EndHeader()
//	ed.BeginInput(11)
//	ui.Text("-> a")
//	ed.EndInput()
//	ed.BeginOutput(12)
//	ui.Text("sum ->")
//	ed.EndOutput()
//	ed.EndNode()
//	ed.End()
//
// Hosts that prefer an ambient editor can call [SetCurrentEditor] and use the
// package-level functions ([Begin], [BeginNode], ...) instead.
//
// # Frames and stages
//
// Inside BeginNode/EndNode a node walks a fixed sequence of stages
// ([StageBegin], [StageHeader], [StageContent], [StageInput], [StageOutput],
// [StageEnd]). Each stage change closes the layout groups of the stage being
// left and opens those of the stage being entered, so callers can request
// stages liberally: asking for the current stage again is a no-op.
//
// A node seen for the first time is drawn fully transparent for that frame
// while its natural size is measured, and it does not take part in dragging
// until the next frame.
//
// # Settings
//
// Dirty settings are written at most once per frame, from [Context.End].
// Load and save problems never stop the editor: a missing or malformed file
// simply yields no stored locations.
//
// [imm]: https://pkg.go.dev/github.com/phanxgames/nodeeditor/imm
package nodeeditor
