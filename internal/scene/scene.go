// Package scene holds the renderable state of a frame: camera, overlay
// projection, deduplicated model and texture registries, and a flat table
// of objects keyed by entity identity.
//
// A Scene is not safe for concurrent use. Own it from one goroutine, or
// guard the whole value with a single lock so renderers always see object
// references and registries from the same state.
package scene

import (
	"slices"

	"mini-scene/internal/config"
	"mini-scene/internal/entity"

	"github.com/kamstrup/intmap"
)

// Scene is the renderable state of one frame.
type Scene struct {
	Camera Camera
	UI     UI

	models   []Model
	objects  []Object
	textures []Texture

	modelSource    ModelSource
	index          *intmap.Map[entity.ID, int]
	indexThreshold int
}

// Option configures a Scene.
type Option func(*Scene)

// WithModelSource sets the callback used to create handles for new models.
func WithModelSource(src ModelSource) Option {
	return func(s *Scene) { s.modelSource = src }
}

// WithObjectIndexThreshold overrides config.GetObjectIndexThreshold.
func WithObjectIndexThreshold(n int) Option {
	return func(s *Scene) {
		if n < 0 {
			n = 0
		}
		s.indexThreshold = n
	}
}

// New creates an empty scene for a viewport of the given aspect ratio.
// vfov is the camera's vertical field of view in degrees.
func New(aspect, vfov float32, opts ...Option) *Scene {
	s := &Scene{
		Camera:         NewCamera(aspect, vfov),
		UI:             NewUI(aspect),
		indexThreshold: config.GetObjectIndexThreshold(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resize updates both projections for a new viewport aspect.
func (s *Scene) Resize(aspect float32) {
	s.Camera.Recalculate(aspect)
	s.UI = NewUI(aspect)
}

// Models returns a copy of the model registry in index order.
func (s *Scene) Models() []Model {
	return slices.Clone(s.models)
}

// Textures returns a copy of the texture registry in index order.
func (s *Scene) Textures() []Texture {
	return slices.Clone(s.textures)
}

// Objects returns a copy of the object table.
func (s *Scene) Objects() []Object {
	return slices.Clone(s.objects)
}
