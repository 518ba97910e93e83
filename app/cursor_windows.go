//go:build windows

package app

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

type point struct {
	X, Y int32
}

// globalCursor returns the OS pointer position in physical screen pixels,
// the same unit screenshot.CaptureRect takes.
func globalCursor() (int, int, bool) {
	if err := procGetCursorPos.Find(); err != nil {
		return 0, 0, false
	}
	var pt point
	r1, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r1 == 0 {
		return 0, 0, false
	}
	return int(pt.X), int(pt.Y), true
}
