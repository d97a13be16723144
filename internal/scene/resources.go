package scene

import "github.com/go-gl/mathgl/mgl32"

// Handle is an opaque GPU resource name issued by the asset loader.
type Handle uint32

// Model is a mesh resource shared by every object that references it.
// Offset is applied in model space before the object's transform.
type Model struct {
	Path   string
	Handle Handle
	Offset mgl32.Vec3
}

// Texture is an image resource shared by index.
type Texture struct {
	Path   string
	Handle Handle
}

// ModelSource produces the handle for a model the first time its path is
// registered.
type ModelSource func(path string) Handle

// Ref is an optional index into one of the scene's resource lists. The
// zero value refers to nothing.
type Ref struct {
	index int
	ok    bool
}

// RefTo returns a reference to index i.
func RefTo(i int) Ref {
	return Ref{index: i, ok: true}
}

// Get returns the referenced index and whether one is set.
func (r Ref) Get() (int, bool) {
	return r.index, r.ok
}

// IsSet reports whether r refers to an entry.
func (r Ref) IsSet() bool {
	return r.ok
}

// AddOrGetModel returns the index of the model registered under path,
// creating it on first use. A non-nil offset overwrites the model's offset
// whether the model is new or not.
func (s *Scene) AddOrGetModel(path string, offset *mgl32.Vec3) int {
	for i := range s.models {
		if s.models[i].Path == path {
			if offset != nil {
				s.models[i].Offset = *offset
			}
			return i
		}
	}

	model := Model{Path: path}
	if s.modelSource != nil {
		model.Handle = s.modelSource(path)
	}
	if offset != nil {
		model.Offset = *offset
	}
	s.models = append(s.models, model)
	return len(s.models) - 1
}

// GetModel looks a model up by path.
func (s *Scene) GetModel(path string) (Model, bool) {
	for _, m := range s.models {
		if m.Path == path {
			return m, true
		}
	}
	return Model{}, false
}

// GetTexture returns the index of the texture registered under path. It
// never creates one.
func (s *Scene) GetTexture(path string) (int, bool) {
	for i := range s.textures {
		if s.textures[i].Path == path {
			return i, true
		}
	}
	return 0, false
}

// AddTexture registers a loaded texture and returns its index. Registering
// a known path again swaps in the new handle and keeps the index.
func (s *Scene) AddTexture(path string, handle Handle) int {
	if i, ok := s.GetTexture(path); ok {
		s.textures[i].Handle = handle
		return i
	}
	s.textures = append(s.textures, Texture{Path: path, Handle: handle})
	return len(s.textures) - 1
}
