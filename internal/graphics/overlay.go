package graphics

import (
	"image"

	"mini-scene/internal/assets"
	"mini-scene/internal/profiling"
	"mini-scene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const overlayVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 2) in vec2 aUV;

uniform mat4 uProj;
uniform mat4 uWorld;

out vec2 vUV;

void main() {
	vUV = vec2(aUV.x, 1.0 - aUV.y);
	gl_Position = uProj * uWorld * vec4(aPos, 1.0);
}
`

const overlayFragmentShader = `#version 410 core
in vec2 vUV;
uniform sampler2D uTexture;
out vec4 fragColor;

void main() {
	fragColor = texture(uTexture, vUV);
}
`

// Overlay draws one image anchored to the top-left corner of the UI
// projection, at one texel per framebuffer pixel.
type Overlay struct {
	shader  *Shader
	quad    *Meshes
	handle  scene.Handle
	texture uint32
	size    image.Point
}

func NewOverlay() (*Overlay, error) {
	shader, err := NewShader(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}
	quad := NewMeshes()
	return &Overlay{shader: shader, quad: quad, handle: quad.Upload(assets.QuadMesh())}, nil
}

// SetImage replaces the overlay contents.
func (o *Overlay) SetImage(img *image.RGBA) {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	o.texture = uint32(UploadTexture(img))
	o.size = img.Bounds().Size()
}

// Render draws the overlay with ui.Proj. framebufferHeight converts pixels
// into UI units, where the full height spans 2.
func (o *Overlay) Render(ui scene.UI, framebufferHeight int) {
	if o.texture == 0 || framebufferHeight <= 0 {
		return
	}
	defer profiling.Track("graphics.Overlay")()

	mesh, ok := o.quad.lookup(o.handle)
	if !ok {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetMatrix4("uProj", ui.Proj.Mat4())
	o.shader.SetMatrix4("uWorld", overlayWorld(ui, o.size, framebufferHeight))
	o.shader.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(mesh.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, mesh.count)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// overlayWorld places a unit quad so it covers size pixels from the
// top-left of the UI box.
func overlayWorld(ui scene.UI, size image.Point, framebufferHeight int) mgl32.Mat4 {
	unit := 2 / float32(framebufferHeight)
	w, h := float32(size.X)*unit, float32(size.Y)*unit
	cx := ui.Proj.Left + w/2
	cy := ui.Proj.Top - h/2
	return mgl32.Translate3D(cx, cy, 0).Mul4(mgl32.Scale3D(w, h, 1))
}

func (o *Overlay) Dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	o.shader.Delete()
	o.quad.Dispose()
}
