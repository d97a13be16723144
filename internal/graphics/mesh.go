package graphics

import (
	"log"

	"mini-scene/internal/assets"
	"mini-scene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type gpuMesh struct {
	vao, vbo uint32
	count    int32
}

// Meshes owns the vertex arrays behind scene model handles. The handle of
// a model is the name of its vertex array.
type Meshes struct {
	byHandle map[scene.Handle]gpuMesh
}

func NewMeshes() *Meshes {
	return &Meshes{byHandle: make(map[scene.Handle]gpuMesh)}
}

// Source returns a scene.ModelSource that loads and uploads the mesh for a
// path. Meshes that fail to load get the zero handle and are not drawn.
func (ms *Meshes) Source() scene.ModelSource {
	return func(path string) scene.Handle {
		mesh, err := assets.LoadMesh(path)
		if err != nil {
			log.Printf("model %s: %v", path, err)
			return 0
		}
		return ms.Upload(mesh)
	}
}

// Upload copies mesh into a new vertex array.
func (ms *Meshes) Upload(mesh *assets.Mesh) scene.Handle {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	stride := int32(assets.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	h := scene.Handle(vao)
	ms.byHandle[h] = gpuMesh{vao: vao, vbo: vbo, count: int32(mesh.Count())}
	return h
}

func (ms *Meshes) lookup(h scene.Handle) (gpuMesh, bool) {
	m, ok := ms.byHandle[h]
	return m, ok
}

// Dispose releases every uploaded mesh.
func (ms *Meshes) Dispose() {
	for h, m := range ms.byHandle {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
		delete(ms.byHandle, h)
	}
}
