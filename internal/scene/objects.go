package scene

import (
	"mini-scene/internal/entity"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
)

// Object is one renderable entry in the scene.
type Object struct {
	ID       entity.ID
	Model    Ref
	Texture  Ref
	Position Similarity
}

// InsertObject adds an object for id with no resources and an identity
// transform. It returns false if id is already present.
func (s *Scene) InsertObject(id entity.ID) bool {
	if _, ok := s.objectByID(id); ok {
		return false
	}
	s.objects = append(s.objects, Object{ID: id, Position: IdentitySimilarity()})
	s.indexObject(id, len(s.objects)-1)
	return true
}

// SetModel points the object at the model registered under path, creating
// the model if needed. offset, when non-nil, replaces the model's offset.
func (s *Scene) SetModel(id entity.ID, path string, offset *mgl32.Vec3) bool {
	i, ok := s.objectByID(id)
	if !ok {
		return false
	}
	s.objects[i].Model = RefTo(s.AddOrGetModel(path, offset))
	return true
}

// SetTexture points the object at an already registered texture. Unknown
// objects and unknown texture paths leave the scene untouched.
func (s *Scene) SetTexture(id entity.ID, path string) bool {
	i, ok := s.objectByID(id)
	if !ok {
		return false
	}
	tex, ok := s.GetTexture(path)
	if !ok {
		return false
	}
	s.objects[i].Texture = RefTo(tex)
	return true
}

// SetPosition overwrites the object's transform.
func (s *Scene) SetPosition(id entity.ID, position Similarity) bool {
	i, ok := s.objectByID(id)
	if !ok {
		return false
	}
	s.objects[i].Position = position
	return true
}

// Object returns a copy of the object identified by id.
func (s *Scene) Object(id entity.ID) (Object, bool) {
	i, ok := s.objectByID(id)
	if !ok {
		return Object{}, false
	}
	return s.objects[i], true
}

func (s *Scene) objectByID(id entity.ID) (int, bool) {
	if s.index != nil {
		return s.index.Get(id)
	}
	for i := range s.objects {
		if s.objects[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// indexObject records a newly appended slot. Small tables are scanned; the
// hashed index is built once the table outgrows the threshold.
func (s *Scene) indexObject(id entity.ID, slot int) {
	if s.index != nil {
		s.index.Put(id, slot)
		return
	}
	if len(s.objects) <= s.indexThreshold {
		return
	}
	s.index = intmap.New[entity.ID, int](len(s.objects) * 2)
	for i := range s.objects {
		s.index.Put(s.objects[i].ID, i)
	}
}
