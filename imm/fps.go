package imm

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 0.5 // seconds

// fpsOverlay is a small FPS/TPS readout re-rendered twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

func (f *fpsOverlay) update(dt float64) {
	f.elapsed += dt
	if f.text != "" && f.elapsed < fpsRefresh {
		return
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if f.img != nil {
		f.render()
	}
}

func (f *fpsOverlay) render() {
	f.img.Clear()
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, f.text)
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		// "FPS: 60.0\nTPS: 60.0" fits in 100x32.
		f.img = ebiten.NewImage(100, 32)
		f.render()
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(screen.Bounds().Dx()-100-4), 4)
	screen.DrawImage(f.img, &op)
}
