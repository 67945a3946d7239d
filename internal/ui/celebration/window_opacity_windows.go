//go:build windows

package celebration

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	gwlExStyle  int32 = -20
	wsExLayered       = 0x00080000
	lwaAlpha          = 0x2
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
)

// applyNativeOpacity turns the confetti window into a layered window so the
// dashboard shows through it.
func (overlay *Window) applyNativeOpacity(alpha uint8) {
	nativeWindow, ok := overlay.window.(driver.NativeWindow)
	if !ok {
		return
	}
	nativeWindow.RunNative(func(context any) {
		hwnd := windowHandle(context)
		if hwnd == 0 {
			return
		}
		if err := setLayeredAlpha(hwnd, alpha); err != nil {
			fyne.LogError("celebration opacity", err)
		}
	})
}

func windowHandle(context any) uintptr {
	switch value := context.(type) {
	case driver.WindowsWindowContext:
		return value.HWND
	case *driver.WindowsWindowContext:
		if value != nil {
			return value.HWND
		}
	}
	return 0
}

func setLayeredAlpha(hwnd uintptr, alpha uint8) error {
	index := uintptr(uint32(gwlExStyle))
	style, _, _ := procGetWindowLongPtrW.Call(hwnd, index)
	if style&wsExLayered == 0 {
		procSetWindowLongPtrW.Call(hwnd, index, style|wsExLayered)
	}
	ok, _, err := procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), lwaAlpha)
	if ok == 0 {
		return err
	}
	return nil
}
