package imm

import (
	"fmt"
	"os"
)

// checkBalanced verifies that every stack opened during the frame was
// closed. Leftovers are reported in debug mode and always discarded so the
// next frame starts clean.
func (u *UI) checkBalanced() {
	if u.opts.Debug {
		if n := len(u.groups); n > 0 {
			u.warnf("%d layout group(s) still open at EndFrame (innermost %s)", n, u.groups[n-1].axis)
		}
		if n := len(u.children); n > 0 {
			u.warnf("%d child region(s) still open at EndFrame", n)
		}
		if n := len(u.alpha); n > 0 {
			u.warnf("%d style alpha(s) still pushed at EndFrame", n)
		}
		if n := u.ids.depth(); n > 0 {
			u.warnf("id stack depth %d at EndFrame", n)
		}
	}
	u.groups = u.groups[:0]
	u.children = u.children[:0]
	u.alpha = u.alpha[:0]
	u.ids.reset()
}

func (u *UI) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[imm] warning: "+format+"\n", args...)
}
