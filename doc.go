// Package lightbox is the gesture-and-transform engine of an image viewer
// with pan, zoom and swipe-to-browse navigation.
//
// The engine, [Viewer], owns everything with state: the current index, the
// zoom scale, the pan offset and the in-flight gesture. It never touches a
// platform API. A host adapter (see package ebitenview for an Ebitengine
// one) forwards raw input to the Viewer and implements [RenderTarget], which
// the Viewer calls back to load images and apply the resulting [Transform].
//
// # Quick start
//
//	v, err := lightbox.New(images, target)
//	if err != nil {
//		return err
//	}
//	v.Open(0)
//	// when the target finishes loading:
//	v.ImageLoaded(req.ID, float64(w), float64(h))
//
// # Transform
//
// The image is centred in the container, offset by the pan, and scaled
// about its own centre. On every load the scale resets to the base scale,
// the largest scale at which the whole image fits without being enlarged
// (see [CalculateBaseScale]). The scale is kept within
// [base scale, Options.MaxScale] and the pan is clamped so the image never
// uncovers more background than its size requires.
//
// # Gestures
//
// Every zooming input goes through [Viewer.ZoomAt], which keeps the screen
// point under the cursor or fingers fixed:
//
//   - [Viewer.Wheel]: one WheelStep per event
//   - [Viewer.DoubleClick]: toggles 1:1 and DoubleClickScale
//   - [Viewer.HandleTouch]: pinch, double-tap (toggles base scale and
//     base scale times DoubleTapFactor), single-finger pan while zoomed and
//     horizontal swipes that browse while not zoomed
//
// [Viewer.HandlePointer] pans with a mouse or pen drag. [Viewer.HandleKey]
// implements Escape, ArrowLeft and ArrowRight.
//
// # Loading
//
// Each [Viewer.Open] issues a [LoadRequest] with a fresh [LoadID]. Signals
// for older IDs, duplicates and unusable sizes are ignored by
// [Viewer.ImageLoaded], so slow loads can never overwrite the image the
// user navigated to.
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger].
package lightbox
