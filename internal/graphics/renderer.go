package graphics

import (
	"mini-scene/internal/profiling"
	"mini-scene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer draws a scene's objects with one shared program.
type Renderer struct {
	shader *Shader
	meshes *Meshes
	width  int32
	height int32
}

// NewRenderer compiles the object program. A GL context must be current.
func NewRenderer(meshes *Meshes) (*Renderer, error) {
	shader, err := NewShader(objectVertexShader, objectFragmentShader)
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return &Renderer{shader: shader, meshes: meshes}, nil
}

// SetViewport matches the GL viewport to the framebuffer size.
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = int32(width), int32(height)
	gl.Viewport(0, 0, r.width, r.height)
}

// Render clears the framebuffer and issues one draw per drawable object.
// It returns the number of draw calls made.
func (r *Renderer) Render(s *scene.Scene) int {
	defer profiling.Track("graphics.Render")()

	gl.ClearColor(0.53, 0.71, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()
	r.shader.SetMatrix4("uViewProj", s.Camera.ViewProjection())
	r.shader.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	calls := 0
	for d := range s.Draws() {
		mesh, ok := r.meshes.lookup(d.Model.Handle)
		if !ok {
			continue
		}
		r.shader.SetMatrix4("uWorld", d.World)
		if d.Texture != nil {
			r.shader.SetBool("uTextured", true)
			gl.BindTexture(gl.TEXTURE_2D, uint32(d.Texture.Handle))
		} else {
			r.shader.SetBool("uTextured", false)
			gl.BindTexture(gl.TEXTURE_2D, 0)
		}
		gl.BindVertexArray(mesh.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, mesh.count)
		calls++
	}
	gl.BindVertexArray(0)
	return calls
}

// Dispose releases the program and uploaded meshes.
func (r *Renderer) Dispose() {
	r.shader.Delete()
	r.meshes.Dispose()
}
