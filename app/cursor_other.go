//go:build !windows

package app

// globalCursor is only used to place the backdrop before the window opens.
// Outside Windows the backdrop is taken from the screen centre.
func globalCursor() (int, int, bool) { return 0, 0, false }
