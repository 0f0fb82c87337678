package lightbox

import "testing"

// fakeTarget is a RenderTarget recording every call. Loads complete only
// when the test calls Viewer.ImageLoaded.
type fakeTarget struct {
	bounds     Rect
	requests   []LoadRequest
	transforms []Transform
	captions   []string
	cleared    int
	locked     int
	unlocked   int
	captured   []int
	released   []int
}

func newFakeTarget(w, h float64) *fakeTarget {
	return &fakeTarget{bounds: Rect{Width: w, Height: h}}
}

func (f *fakeTarget) ContainerBounds() Rect        { return f.bounds }
func (f *fakeTarget) LoadImage(req LoadRequest)    { f.requests = append(f.requests, req) }
func (f *fakeTarget) ClearImage()                  { f.cleared++ }
func (f *fakeTarget) SetTransform(t Transform)     { f.transforms = append(f.transforms, t) }
func (f *fakeTarget) SetCaption(caption string)    { f.captions = append(f.captions, caption) }
func (f *fakeTarget) LockScroll()                  { f.locked++ }
func (f *fakeTarget) UnlockScroll()                { f.unlocked++ }
func (f *fakeTarget) CapturePointer(pointerID int) { f.captured = append(f.captured, pointerID) }
func (f *fakeTarget) ReleasePointer(pointerID int) { f.released = append(f.released, pointerID) }

func (f *fakeTarget) lastRequest() LoadRequest {
	if len(f.requests) == 0 {
		return LoadRequest{}
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeTarget) lastTransform() Transform {
	if len(f.transforms) == 0 {
		return Transform{}
	}
	return f.transforms[len(f.transforms)-1]
}

// plainTarget implements only RenderTarget, without the optional interfaces.
type plainTarget struct {
	bounds Rect
	last   LoadRequest
}

func (p *plainTarget) ContainerBounds() Rect     { return p.bounds }
func (p *plainTarget) LoadImage(req LoadRequest) { p.last = req }
func (p *plainTarget) ClearImage()               {}
func (p *plainTarget) SetTransform(Transform)    {}
func (p *plainTarget) SetCaption(string)         {}

func testImages(n int) []Image {
	imgs := make([]Image, n)
	for i := range imgs {
		imgs[i] = Image{Source: "img" + string(rune('a'+i)) + ".jpg", AltText: "image " + string(rune('a'+i))}
	}
	return imgs
}

// openLoaded creates a viewer over n images in a w x h container, opens
// index and completes the load with an iw x ih image.
func openLoaded(t *testing.T, n int, w, h, iw, ih float64, index int) (*Viewer, *fakeTarget) {
	t.Helper()
	ft := newFakeTarget(w, h)
	v, err := New(testImages(n), ft)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v.Open(index)
	if !v.ImageLoaded(ft.lastRequest().ID, iw, ih) {
		t.Fatalf("ImageLoaded rejected current load")
	}
	return v, ft
}
