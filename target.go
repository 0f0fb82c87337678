package lightbox

// LoadID identifies one image load request. Every Open issues a new one;
// only the most recent is honoured by Viewer.ImageLoaded.
type LoadID uint64

// LoadRequest asks the render target to display an image. The target must
// report completion through Viewer.ImageLoaded with the same ID.
type LoadRequest struct {
	ID      LoadID
	Index   int
	Source  string
	AltText string
}

// RenderTarget is the surface a Viewer draws into. All methods are called
// from the goroutine that drives the Viewer.
type RenderTarget interface {
	// ContainerBounds returns the screen-space rectangle the image is
	// centred in.
	ContainerBounds() Rect
	// LoadImage starts loading the requested source. It may call
	// Viewer.ImageLoaded before returning.
	LoadImage(req LoadRequest)
	// ClearImage removes the displayed image.
	ClearImage()
	// SetTransform applies the current pan and scale to the image.
	SetTransform(t Transform)
	// SetCaption shows the current image's alt text.
	SetCaption(caption string)
}

// ScrollLocker is implemented by render targets that embed the viewer in a
// scrollable page. The page is locked while the viewer is open.
type ScrollLocker interface {
	LockScroll()
	UnlockScroll()
}

// PointerCapturer is implemented by render targets that can route all events
// of a pointer to the container while a drag is in progress, including
// movement outside of it.
type PointerCapturer interface {
	CapturePointer(pointerID int)
	ReleasePointer(pointerID int)
}
