package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	cameraNear float32 = 1.0
	cameraFar  float32 = 200.0
)

// Perspective describes a perspective projection. FovY is in radians.
type Perspective struct {
	Aspect float32
	FovY   float32
	Near   float32
	Far    float32
}

// Mat4 returns the clip-space matrix for p.
func (p Perspective) Mat4() mgl32.Mat4 {
	return mgl32.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}

// Camera handles the view and projection matrices
type Camera struct {
	View mgl32.Mat4 // world -> view
	Proj Perspective
}

// NewCamera builds a camera with an identity view. vfov is the vertical
// field of view in degrees.
func NewCamera(aspect, vfov float32) Camera {
	return Camera{
		View: mgl32.Ident4(),
		Proj: Perspective{
			Aspect: aspect,
			FovY:   mgl32.DegToRad(vfov),
			Near:   cameraNear,
			Far:    cameraFar,
		},
	}
}

// Recalculate updates the projection for a new viewport aspect. Field of
// view and clip planes are kept.
func (c *Camera) Recalculate(aspect float32) {
	c.Proj.Aspect = aspect
}

// SetView replaces the view transform. The caller passes the already
// inverted camera-to-world matrix.
func (c *Camera) SetView(view mgl32.Mat4) {
	c.View = view
}

// ViewProjection returns Proj * View.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Proj.Mat4().Mul4(c.View)
}
