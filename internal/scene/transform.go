package scene

import "github.com/go-gl/mathgl/mgl32"

// Similarity is a rotation and uniform scale followed by a translation.
type Similarity struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       float32
}

// IdentitySimilarity returns the transform that leaves points unchanged.
func IdentitySimilarity() Similarity {
	return Similarity{Rotation: mgl32.QuatIdent(), Scale: 1}
}

// NewSimilarity builds a transform from its parts.
func NewSimilarity(translation mgl32.Vec3, rotation mgl32.Quat, scale float32) Similarity {
	return Similarity{Translation: translation, Rotation: rotation, Scale: scale}
}

// Mat4 returns T * R * S.
func (s Similarity) Mat4() mgl32.Mat4 {
	t := mgl32.Translate3D(s.Translation.X(), s.Translation.Y(), s.Translation.Z())
	r := s.Rotation.Mat4()
	sc := mgl32.Scale3D(s.Scale, s.Scale, s.Scale)
	return t.Mul4(r).Mul4(sc)
}

// Inverse returns the transform undoing s. A zero scale has no inverse and
// yields the identity.
func (s Similarity) Inverse() Similarity {
	if s.Scale == 0 {
		return IdentitySimilarity()
	}
	inv := s.Rotation.Inverse()
	scale := 1 / s.Scale
	return Similarity{
		Translation: inv.Rotate(s.Translation).Mul(-scale),
		Rotation:    inv,
		Scale:       scale,
	}
}
