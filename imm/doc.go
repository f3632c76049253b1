// Package imm is a small immediate-mode UI host on Ebitengine. It implements
// [nodeeditor.Host]: stack layout groups with springs, an id stack, a style
// alpha stack, a draw list, invisible buttons with active-item tracking and
// pointer drag deltas.
//
// # Frames
//
// Each tick the application calls [UI.NewFrame], submits its widgets, and
// calls [UI.EndFrame]. [UI.Draw] renders the draw list of the last completed
// frame and is safe to call any number of times between updates.
//
//	func (g *game) Update() error {
//		g.ui.NewFrame()
//		nodeeditor.Begin("editor")
//		// ... nodes ...
//		nodeeditor.End()
//		g.ui.EndFrame()
//		return nil
//	}
//
//	func (g *game) Draw(screen *ebiten.Image) { g.ui.Draw(screen) }
//
// # Layout
//
// Groups measure themselves every frame. Springs distribute the space a group
// was short of on the previous frame, so a layout settles one frame after its
// content changes size.
//
// # Automation
//
// Synthetic pointer input can be queued with [UI.InjectPress],
// [UI.InjectDrag] and friends, or driven from a JSON script loaded with
// [LoadScript]. [UI.Screenshot] captures the rendered frame to a PNG.
package imm
