package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaSquare(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Equal(t, float64(100), Area(square))
	assert.True(t, IsPositive(square))

	reversed := Reverse(square)
	assert.Equal(t, float64(-100), Area(reversed))
	assert.False(t, IsPositive(reversed))
}

func TestWindingNumberContainment(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Equal(t, 1, WindingNumber(Point{5, 5}, square))
	assert.Equal(t, 0, WindingNumber(Point{15, 15}, square))
}

func TestPointInPolygonRules(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	assert.Equal(t, Inside, PointInPolygon(Point{5, 5}, square, EvenOdd))
	assert.Equal(t, Inside, PointInPolygon(Point{5, 5}, square, NonZero))
	assert.Equal(t, Inside, PointInPolygon(Point{5, 5}, square, Positive))
	assert.Equal(t, Outside, PointInPolygon(Point{5, 5}, square, Negative))

	assert.Equal(t, OnBoundary, PointInPolygon(Point{0, 5}, square, NonZero))
	assert.Equal(t, Outside, PointInPolygon(Point{20, 20}, square, NonZero))
}

func TestCrossAndDotProduct(t *testing.T) {
	o := Point{0, 0}
	b := Point{10, 0}
	c := Point{0, 10}
	assert.Equal(t, int64(100), CrossProduct(o, b, c))
	assert.Equal(t, int64(0), DotProduct(o, b, c))
	assert.True(t, IsCollinear(Point{0, 0}, Point{5, 5}, Point{10, 10}))
	assert.False(t, IsCollinear(o, b, c))
}

func TestBounds(t *testing.T) {
	p := Path{{-5, 3}, {10, -2}, {4, 8}}
	r := Bounds(p)
	assert.Equal(t, Rect{Left: -5, Top: -2, Right: 10, Bottom: 8}, r)
}
