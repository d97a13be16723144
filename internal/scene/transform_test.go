package scene_test

import (
	"testing"

	"mini-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIdentitySimilarity(t *testing.T) {
	s := scene.IdentitySimilarity()
	p := mgl32.Vec3{1, -2, 3}

	assert.True(t, p.ApproxEqual(mgl32.TransformCoordinate(p, s.Mat4())))
	assert.True(t, mgl32.Ident4().ApproxEqual(s.Mat4()))
}

func TestSimilarityMatchesMatrix(t *testing.T) {
	s := scene.NewSimilarity(
		mgl32.Vec3{4, 5, 6},
		mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}),
		2,
	)
	p := mgl32.Vec3{1, 0, 0}

	// (1,0,0) scaled to (2,0,0), rotated 90deg about Y to (0,0,-2), then moved.
	got := mgl32.TransformCoordinate(p, s.Mat4())
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{4, 5, 4}, 1e-5), "got %v", got)
}

func TestSimilarityInverse(t *testing.T) {
	s := scene.NewSimilarity(
		mgl32.Vec3{-3, 1, 7},
		mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{1, 1, 0}.Normalize()),
		0.5,
	)
	p := mgl32.Vec3{2, 3, 4}

	back := mgl32.TransformCoordinate(p, s.Inverse().Mat4().Mul4(s.Mat4()))
	assert.True(t, back.ApproxEqualThreshold(p, 1e-4), "got %v", back)

	assert.Equal(t, scene.IdentitySimilarity(), scene.Similarity{Scale: 0}.Inverse())
}
