package imm

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/nodeeditor/geom"
)

var whitePixel *ebiten.Image

func white() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(image.White)
	}
	return whitePixel
}

// view maps logical units to screen pixels.
func (u *UI) view() geom.Matrix {
	return geom.Scale(u.opts.Scale, u.opts.Scale)
}

// Layout returns the screen size for Ebitengine's Game.Layout.
func (u *UI) Layout() (int, int) {
	return int(math.Ceil(float64(u.opts.Width) * u.opts.Scale)),
		int(math.Ceil(float64(u.opts.Height) * u.opts.Scale))
}

// Draw renders the last completed frame, the FPS overlay, and any queued
// screenshots.
func (u *UI) Draw(screen *ebiten.Image) {
	if u.opts.Background.A > 0 {
		screen.Fill(u.opts.Background.RGBA())
	}
	view := u.view()
	stroke := float32(view.ScaleFactor())
	for i := range u.draws {
		u.drawCommand(screen, view, stroke, &u.draws[i])
	}
	if u.opts.ShowFPS {
		u.fps.draw(screen)
	}
	u.flushScreenshots(screen)
}

func (u *UI) drawCommand(screen *ebiten.Image, view geom.Matrix, stroke float32, cmd *drawCmd) {
	dst := screen
	if cmd.clipped {
		c := view.ApplyRect(cmd.clip)
		dst = screen.SubImage(image.Rect(
			int(c.Min.X), int(c.Min.Y),
			int(math.Ceil(c.Max.X)), int(math.Ceil(c.Max.Y)),
		)).(*ebiten.Image)
	}
	clr := cmd.color.RGBA()

	switch cmd.kind {
	case drawRectFilled:
		r := view.ApplyRect(geom.RectF{Min: cmd.a, Max: cmd.b})
		sz := r.Size()
		if sz.IsEmpty() {
			return
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(sz.W, sz.H)
		op.GeoM.Translate(r.Min.X, r.Min.Y)
		op.ColorScale.ScaleWithColor(clr)
		dst.DrawImage(white(), &op)
	case drawRect:
		r := view.ApplyRect(geom.RectF{Min: cmd.a, Max: cmd.b})
		sz := r.Size()
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(sz.W), float32(sz.H), stroke, clr, true)
	case drawLine:
		a, b := view.Apply(cmd.a), view.Apply(cmd.b)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), stroke, clr, true)
	case drawText:
		img := u.textImage(cmd.text)
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(u.opts.Scale, u.opts.Scale)
		p := view.Apply(cmd.a)
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleWithColor(clr)
		dst.DrawImage(img, &op)
	}
}

// textImage renders s with the debug font once and caches the result.
func (u *UI) textImage(s string) *ebiten.Image {
	if img, ok := u.textCache[s]; ok {
		return img
	}
	size := TextSize(s)
	img := ebiten.NewImage(max(1, int(size.W)), glyphH)
	ebitenutil.DebugPrint(img, s)
	u.textCache[s] = img
	return img
}
