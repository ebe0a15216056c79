package geom

// Matrix is a 4x4 affine transform stored column major, the layout CSS
// matrix3d() and most scene graphs use. The zero value is not the identity;
// use Identity.
type Matrix [16]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a 2D translation.
func Translate(x, y float64) Matrix {
	m := Identity()
	m[12], m[13] = x, y
	return m
}

// Offset returns the 2D translate component as a point.
func (m Matrix) Offset() Point {
	return Point{X: m[12], Y: m[13]}
}

// IsZero reports whether m is the zero value, which hosts use for "no
// transform set".
func (m Matrix) IsZero() bool { return m == Matrix{} }

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool { return m == Identity() }
