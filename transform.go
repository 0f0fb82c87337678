package lightbox

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is what a Viewer emits to its render target: the image is
// centred in the container, offset by (TranslateX, TranslateY), then scaled
// by Scale about its own centre.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// Matrix returns the affine matrix mapping image pixels to screen
// coordinates for an image of size (imageW, imageH) shown in container.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-imageW/2, -imageH/2) -> Scale -> Translate(centre + pan)
func (t Transform) Matrix(container Rect, imageW, imageH float64) [6]float64 {
	cx, cy := container.Center()
	toOrigin := [6]float64{1, 0, 0, 1, -imageW / 2, -imageH / 2}
	scale := [6]float64{t.Scale, 0, 0, t.Scale, 0, 0}
	place := [6]float64{1, 0, 0, 1, cx + t.TranslateX, cy + t.TranslateY}
	return multiplyAffine(place, multiplyAffine(scale, toOrigin))
}

// ImageToScreen converts an image pixel position to screen coordinates.
func (t Transform) ImageToScreen(container Rect, imageW, imageH, ix, iy float64) (sx, sy float64) {
	return transformPoint(t.Matrix(container, imageW, imageH), ix, iy)
}

// ScreenToImage converts a screen position to image pixel coordinates.
// A zero scale yields the identity mapping.
func (t Transform) ScreenToImage(container Rect, imageW, imageH, sx, sy float64) (ix, iy float64) {
	return transformPoint(invertAffine(t.Matrix(container, imageW, imageH)), sx, sy)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
