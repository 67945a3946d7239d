//go:build !windows

package celebration

// applyNativeOpacity is a no-op where fyne cannot make a window translucent;
// the overlay keeps its tinted background instead.
func (overlay *Window) applyNativeOpacity(alpha uint8) {
	_ = alpha
}
