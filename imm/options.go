package imm

import "github.com/phanxgames/nodeeditor"

const (
	defaultWidth         = 1280
	defaultHeight        = 720
	defaultItemSpacing   = 4.0
	defaultDragThreshold = 4.0 // pixels
	defaultScreenshotDir = "screenshots"
	maxLogLines          = 256
)

// Options configures a UI. Zero fields take defaults.
type Options struct {
	// Width and Height are the logical canvas size. Defaults 1280x720.
	Width, Height int
	// Scale maps logical units to screen pixels. Default 1.
	Scale float64
	// ItemSpacing is the gap between consecutive items in a group and the
	// spacing used by springs asking for the default. Default 4.
	ItemSpacing float64
	// Background clears the screen before drawing when its alpha is non-zero.
	Background nodeeditor.Color
	// ScreenshotDir receives PNGs queued with Screenshot. Default "screenshots".
	ScreenshotDir string
	// ShowFPS draws an FPS/TPS overlay in the top-right corner.
	ShowFPS bool
	// Input supplies pointer state. Defaults to polling Ebitengine.
	Input InputSource
	// Debug prints stack balance warnings and log lines to stderr.
	Debug bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.ItemSpacing == 0 {
		o.ItemSpacing = defaultItemSpacing
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = defaultScreenshotDir
	}
	if o.Input == nil {
		o.Input = EbitenInput{}
	}
	return o
}
