package main

import (
	"image/color"
	"log"
	"time"

	"mini-scene/internal/assets"
	"mini-scene/internal/entity"
	"mini-scene/internal/graphics"
	"mini-scene/internal/profiling"
	"mini-scene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 50 * time.Millisecond

// ViewLoop drives the window: animate, render, present.
type ViewLoop struct {
	window   *glfw.Window
	renderer *graphics.Renderer
	overlay  *graphics.Overlay
	scene    *scene.Scene
	ids      []entity.ID
	fbHeight int

	start            time.Time
	framesAtCheck    int
	lastFPSCheckTime time.Time
}

func NewViewLoop(window *glfw.Window, r *graphics.Renderer, o *graphics.Overlay, s *scene.Scene, ids []entity.ID, fbHeight int) *ViewLoop {
	now := time.Now()
	v := &ViewLoop{
		window:           window,
		renderer:         r,
		overlay:          o,
		scene:            s,
		ids:              ids,
		fbHeight:         fbHeight,
		start:            now,
		framesAtCheck:    profiling.Frames(),
		lastFPSCheckTime: now,
	}
	v.updateLabel(0, 0)
	return v
}

// SetFramebufferHeight keeps overlay sizing in pixels after a resize.
func (v *ViewLoop) SetFramebufferHeight(h int) {
	v.fbHeight = h
}

func (v *ViewLoop) updateLabel(fps, draws int) {
	img, err := assets.RenderLabel(statusLine(fps, draws, v.scene), 18, color.White)
	if err != nil {
		log.Printf("overlay label: %v", err)
		return
	}
	v.overlay.SetImage(img)
}

// Run blocks until the window is closed.
func (v *ViewLoop) Run() {
	for !v.window.ShouldClose() {
		v.tick()
	}
}

func (v *ViewLoop) tick() {
	profiling.ResetFrame()
	frameStart := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	t := float32(time.Since(v.start).Seconds())
	func() {
		defer profiling.Track("scene.Update")()
		spin(v.scene, v.ids, t)
		v.scene.Camera.SetView(orbitView(t*0.2, orbitRadius(len(v.ids)), 6))
	}()

	calls := v.renderer.Render(v.scene)
	v.overlay.Render(v.scene.UI, v.fbHeight)

	func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()

	if d := time.Since(frameStart); d > slowFrame {
		log.Print(slowFrameLine(d))
	}

	if time.Since(v.lastFPSCheckTime) >= time.Second {
		frames := profiling.Frames()
		fps := frames - v.framesAtCheck
		v.window.SetTitle(fpsTitle(fps, calls))
		v.updateLabel(fps, calls)
		v.framesAtCheck = frames
		v.lastFPSCheckTime = time.Now()
	}
}
