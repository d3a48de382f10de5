package geometry

// Rectangle is an axis-aligned rectangle defined by its side lengths.
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle creates a rectangle with the given side lengths.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{
		Width:  width,
		Height: height,
	}
}

// Area returns the surface area of the rectangle.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}
