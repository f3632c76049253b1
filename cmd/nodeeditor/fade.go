package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader fades nodes in after the frame on which they are first measured.
// Call Update(dt) each frame.
type Fader struct {
	duration float32
	fn       ease.TweenFunc
	tweens   map[int]*gween.Tween
	alpha    map[int]float64
}

// NewFader creates a Fader. A non-positive duration disables fading.
func NewFader(duration float32, fn ease.TweenFunc) *Fader {
	return &Fader{
		duration: duration,
		fn:       fn,
		tweens:   make(map[int]*gween.Tween),
		alpha:    make(map[int]float64),
	}
}

// Alpha returns node id's opacity. The first call starts its fade at 0.
func (f *Fader) Alpha(id int) float64 {
	if f.duration <= 0 {
		return 1
	}
	if a, ok := f.alpha[id]; ok {
		return a
	}
	f.tweens[id] = gween.New(0, 1, f.duration, f.fn)
	f.alpha[id] = 0
	return 0
}

// Update advances all running fades by dt seconds.
func (f *Fader) Update(dt float32) {
	for id, tw := range f.tweens {
		v, done := tw.Update(dt)
		if done {
			f.alpha[id] = 1
			delete(f.tweens, id)
			continue
		}
		f.alpha[id] = float64(v)
	}
}

// Forget drops node id so its next Alpha call fades it in again.
func (f *Fader) Forget(id int) {
	delete(f.tweens, id)
	delete(f.alpha, id)
}

// Running returns the number of fades in progress.
func (f *Fader) Running() int { return len(f.tweens) }
