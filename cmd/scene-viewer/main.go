package main

import (
	"flag"
	"log"
	"runtime"
	"strings"

	"mini-scene/internal/config"
	"mini-scene/internal/entity"
	"mini-scene/internal/graphics"
	"mini-scene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	textureDir := flag.String("textures", "", "directory of textures to register")
	models := flag.String("models", "builtin/cube,builtin/quad", "comma separated model paths")
	count := flag.Int("count", 16, "number of objects to place")
	fov := flag.Float64("fov", float64(config.GetFieldOfView()), "vertical field of view in degrees")
	width := flag.Int("width", 0, "window width")
	height := flag.Int("height", 0, "window height")
	indexThreshold := flag.Int("index-threshold", config.GetObjectIndexThreshold(), "object count above which lookups use a hashed index")
	flag.Parse()

	config.SetObjectIndexThreshold(*indexThreshold)
	config.SetFieldOfView(float32(*fov))
	config.SetWindowSize(*width, *height)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}
	if err := gl.Init(); err != nil {
		panic(err)
	}

	meshes := graphics.NewMeshes()
	r, err := graphics.NewRenderer(meshes)
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	overlay, err := graphics.NewOverlay()
	if err != nil {
		panic(err)
	}
	defer overlay.Dispose()

	fbw, fbh := window.GetFramebufferSize()
	r.SetViewport(fbw, fbh)

	s := scene.New(aspectOf(fbw, fbh), config.GetFieldOfView(), scene.WithModelSource(meshes.Source()))
	defer graphics.DeleteTextures(s)

	if *textureDir != "" {
		if _, err := graphics.LoadSceneTextures(s, *textureDir); err != nil {
			log.Printf("textures: %v", err)
		}
	}

	alloc := entity.NewAllocator()
	ids := populate(s, alloc, splitList(*models), texturePaths(s), *count)
	log.Printf("Scene ready: %d objects, %d models, %d textures", len(ids), len(s.Models()), len(s.Textures()))

	loop := NewViewLoop(window, r, overlay, s, ids, fbh)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if width == 0 || height == 0 {
			return // minimised
		}
		r.SetViewport(width, height)
		s.Resize(aspectOf(width, height))
		loop.SetFramebufferHeight(height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	loop.Run()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	w, h := config.GetWindowSize()
	window, err := glfw.CreateWindow(w, h, "scene-viewer", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}

func aspectOf(width, height int) float32 {
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func texturePaths(s *scene.Scene) []string {
	textures := s.Textures()
	out := make([]string, len(textures))
	for i, t := range textures {
		out[i] = t.Path
	}
	return out
}
