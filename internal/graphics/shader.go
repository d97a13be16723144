package graphics

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const objectVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 uViewProj;
uniform mat4 uWorld;

out vec3 vNormal;
out vec2 vUV;

void main() {
	vNormal = mat3(uWorld) * aNormal;
	vUV = aUV;
	gl_Position = uViewProj * uWorld * vec4(aPos, 1.0);
}
`

const objectFragmentShader = `#version 410 core
in vec3 vNormal;
in vec2 vUV;

uniform sampler2D uTexture;
uniform bool uTextured;

out vec4 fragColor;

void main() {
	vec3 light = normalize(vec3(0.4, 1.0, 0.3));
	float diffuse = 0.35 + 0.65 * max(dot(normalize(vNormal), light), 0.0);
	vec4 base = uTextured ? texture(uTexture, vUV) : vec4(0.8, 0.8, 0.8, 1.0);
	fragColor = vec4(base.rgb * diffuse, base.a);
}
`

// Shader represents an OpenGL shader program
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// NewShader compiles and links a program from in-memory sources
func NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetBool sets a boolean uniform
func (s *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	if msg, failed := infoLog(program, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog); failed {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	if msg, failed := infoLog(shader, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog); failed {
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return shader, nil
}

// infoLog checks the status flag of a shader or program object and, when it
// reports failure, returns the driver's log.
func infoLog(
	object, status uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) (string, bool) {
	var ok int32
	getiv(object, status, &ok)
	if ok != gl.FALSE {
		return "", false
	}

	var logLength int32
	getiv(object, gl.INFO_LOG_LENGTH, &logLength)
	buf := strings.Repeat("\x00", int(logLength+1))
	getLog(object, logLength, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00"), true
}
