package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenRect returns the bounds of the primary screen.
func ScreenRect() (image.Rectangle, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("screen rect: %w", err)
	}
	return r, nil
}

// Backdrop grabs the desktop pixels under area before the selector window
// covers them. The area is clipped to the screen.
func Backdrop(area image.Rectangle) (*image.RGBA, error) {
	if area.Empty() {
		return nil, fmt.Errorf("backdrop: empty area %v", area)
	}
	if screen, err := screenshot.ScreenRect(); err == nil {
		area = area.Intersect(screen)
		if area.Empty() {
			return nil, fmt.Errorf("backdrop: area outside screen %v", screen)
		}
	}
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, fmt.Errorf("backdrop: %w", err)
	}
	return img, nil
}
