package scene_test

import (
	"testing"

	"mini-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCamera(t *testing.T) {
	c := scene.NewCamera(1.5, 90)

	assert.Equal(t, mgl32.Ident4(), c.View)
	assert.Equal(t, float32(1.5), c.Proj.Aspect)
	assert.InDelta(t, mgl32.DegToRad(90), c.Proj.FovY, 1e-6)
	assert.Equal(t, float32(1.0), c.Proj.Near)
	assert.Equal(t, float32(200.0), c.Proj.Far)
}

func TestCameraRecalculateOnlyTouchesAspect(t *testing.T) {
	c := scene.NewCamera(1.0, 60)
	view := mgl32.Translate3D(1, 2, 3)
	c.SetView(view)
	before := c.Proj

	c.Recalculate(2.0)

	assert.Equal(t, float32(2.0), c.Proj.Aspect)
	assert.Equal(t, before.FovY, c.Proj.FovY)
	assert.Equal(t, before.Near, c.Proj.Near)
	assert.Equal(t, before.Far, c.Proj.Far)
	assert.Equal(t, view, c.View)
}

func TestCameraViewProjection(t *testing.T) {
	c := scene.NewCamera(4.0/3.0, 45)
	c.SetView(mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))

	want := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 1, 200).Mul4(c.View)
	assert.True(t, want.ApproxEqual(c.ViewProjection()))
}

func TestNewUI(t *testing.T) {
	ui := scene.NewUI(1.6)

	assert.Equal(t, scene.Orthographic{Left: -1.6, Right: 1.6, Bottom: -1, Top: 1, Near: -1, Far: 1}, ui.Proj)
	assert.True(t, mgl32.Ortho(-1.6, 1.6, -1, 1, -1, 1).ApproxEqual(ui.Proj.Mat4()))

	// The right edge of the overlay maps to the right edge of clip space.
	edge := ui.Proj.Mat4().Mul4x1(mgl32.Vec4{1.6, 1, 0, 1})
	assert.InDelta(t, 1.0, edge.X(), 1e-6)
	assert.InDelta(t, 1.0, edge.Y(), 1e-6)
}
