package scene

import (
	"iter"

	"mini-scene/internal/entity"
	"mini-scene/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Draw is one draw call worth of scene state. Model and Texture point into
// the scene's registries and are only valid during the iteration step that
// produced them. Texture is nil for untextured objects.
type Draw struct {
	ID      entity.ID
	Model   *Model
	Texture *Texture
	World   mgl32.Mat4
}

// Draws yields every object that has a model, in table order. References
// are checked against the current registry lengths before use.
func (s *Scene) Draws() iter.Seq[Draw] {
	return func(yield func(Draw) bool) {
		defer profiling.Track("scene.Draws")()

		for i := range s.objects {
			obj := &s.objects[i]
			mi, ok := obj.Model.Get()
			if !ok || mi < 0 || mi >= len(s.models) {
				continue
			}
			model := &s.models[mi]

			var tex *Texture
			if ti, ok := obj.Texture.Get(); ok && ti >= 0 && ti < len(s.textures) {
				tex = &s.textures[ti]
			}

			off := model.Offset
			world := obj.Position.Mat4().Mul4(mgl32.Translate3D(off.X(), off.Y(), off.Z()))
			if !yield(Draw{ID: obj.ID, Model: model, Texture: tex, World: world}) {
				return
			}
		}
	}
}
