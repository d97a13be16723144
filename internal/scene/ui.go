package scene

import "github.com/go-gl/mathgl/mgl32"

// Orthographic describes a parallel projection box.
type Orthographic struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// Mat4 returns the clip-space matrix for o.
func (o Orthographic) Mat4() mgl32.Mat4 {
	return mgl32.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

// UI holds the overlay projection. Unlike Camera it has no resize hook;
// build a new one with NewUI when the viewport changes.
type UI struct {
	Proj Orthographic
}

// NewUI spans [-aspect, aspect] horizontally and [-1, 1] on the other axes.
func NewUI(aspect float32) UI {
	return UI{
		Proj: Orthographic{
			Left:   -aspect,
			Right:  aspect,
			Bottom: -1,
			Top:    1,
			Near:   -1,
			Far:    1,
		},
	}
}
