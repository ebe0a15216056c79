package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())
	assert.Equal(t, 1200.0, r.Area())
	assert.Equal(t, 40.0, r.Extent(Vertical))
	assert.Equal(t, 30.0, r.Extent(Horizontal))
	assert.Equal(t, 10.0, r.Start(Horizontal))
	assert.Equal(t, 60.0, r.End(Vertical))
}

func TestRectContainsExcludesTrailingEdges(t *testing.T) {
	r := Rect{Width: 10, Height: 10}
	assert.True(t, r.Contains(Point{}))
	assert.True(t, r.Contains(Point{X: 9.9, Y: 9.9}))
	assert.False(t, r.Contains(Point{X: 10, Y: 5}))
	assert.False(t, r.Contains(Point{X: 5, Y: 10}))
}

func TestRectFromEdgesNeverNegative(t *testing.T) {
	r := RectFromEdges(10, 10, 5, 20)
	assert.Equal(t, Rect{X: 10, Y: 10, Width: 0, Height: 10}, r)
	assert.True(t, r.Empty())
}

func TestIntersect(t *testing.T) {
	a := Rect{Width: 10, Height: 10}
	assert.Equal(t, Rect{X: 5, Y: 5, Width: 5, Height: 5}, Intersect(a, Rect{X: 5, Y: 5, Width: 10, Height: 10}))
	assert.Zero(t, Intersect(a, Rect{X: 20, Y: 20, Width: 5, Height: 5}).Area())
}

func TestInsetAndScale(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	assert.Equal(t, Rect{X: 6, Y: 6, Width: 88, Height: 38}, r.Inset(Uniform(6)))
	assert.Equal(t, Rect{Width: 0, Height: 0}, r.Inset(Uniform(80)).MoveTo(Point{}))
	assert.Equal(t, Rect{Width: 50, Height: 25}, r.Scale(0.5))
	assert.Equal(t, Rect{X: 3, Y: 4, Width: 100, Height: 50}, r.Translate(Point{X: 3, Y: 4}))
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
		err  bool
	}{
		{in: "", want: Vertical},
		{in: "vertical", want: Vertical},
		{in: "horizontal", want: Horizontal},
		{in: "diagonal", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestAxisVector(t *testing.T) {
	assert.Equal(t, Point{Y: 4}, Vertical.Vector(4))
	assert.Equal(t, Point{X: 4}, Horizontal.Vector(4))
	assert.Equal(t, 7.0, Horizontal.Along(Point{X: 7, Y: 9}))
}

func TestMatrixTranslation(t *testing.T) {
	assert.Equal(t, Point{X: 3, Y: -4}, Translate(3, -4).Offset())
	assert.True(t, Identity().IsIdentity())
	assert.False(t, Translate(0, 1).IsIdentity())
	assert.True(t, Matrix{}.IsZero())
}
