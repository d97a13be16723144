package main

import (
	"log"
	"math"

	"mini-scene/internal/entity"
	"mini-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const gridSpacing = 2.5

// populate stands in for game logic: it creates count entities laid out on
// a square grid and cycles through the given models and textures.
func populate(s *scene.Scene, alloc *entity.Allocator, models, textures []string, count int) []entity.ID {
	if count <= 0 || len(models) == 0 {
		return nil
	}

	side := int(math.Ceil(math.Sqrt(float64(count))))
	half := float32(side-1) * gridSpacing / 2

	ids := make([]entity.ID, 0, count)
	for i := 0; i < count; i++ {
		id := alloc.Create()
		if !s.InsertObject(id) {
			log.Printf("entity %d already in scene", id)
			continue
		}

		s.SetModel(id, models[i%len(models)], nil)
		if len(textures) > 0 {
			path := textures[i%len(textures)]
			if !s.SetTexture(id, path) {
				log.Printf("texture %s not registered", path)
			}
		}

		x := float32(i%side)*gridSpacing - half
		z := float32(i/side)*gridSpacing - half
		s.SetPosition(id, scene.NewSimilarity(mgl32.Vec3{x, 0, z}, mgl32.QuatIdent(), 1))
		ids = append(ids, id)
	}
	return ids
}

// spin rotates every object about its vertical axis, keeping translation
// and scale.
func spin(s *scene.Scene, ids []entity.ID, angle float32) {
	rot := mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})
	for _, id := range ids {
		obj, ok := s.Object(id)
		if !ok {
			continue
		}
		pos := obj.Position
		pos.Rotation = rot
		s.SetPosition(id, pos)
	}
}

// orbitCamera places the camera on a circle around the origin, facing it.
// The result is the camera's world transform.
func orbitCamera(angle, radius, height float32) scene.Similarity {
	eye := mgl32.Vec3{
		radius * float32(math.Cos(float64(angle))),
		height,
		radius * float32(math.Sin(float64(angle))),
	}
	facing := mgl32.Mat4ToQuat(mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})).Inverse()
	return scene.NewSimilarity(eye, facing, 1)
}

// orbitView is the view matrix for orbitCamera.
func orbitView(angle, radius, height float32) mgl32.Mat4 {
	return orbitCamera(angle, radius, height).Inverse().Mat4()
}
