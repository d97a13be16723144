package main

import (
	"fmt"
	"math"
	"time"

	"mini-scene/internal/profiling"
	"mini-scene/internal/scene"
)

func fpsTitle(fps, draws int) string {
	return fmt.Sprintf("scene-viewer | %d FPS | %d draws", fps, draws)
}

// slowFrameLine summarises where the current frame's time went.
func slowFrameLine(d time.Duration) string {
	return fmt.Sprintf("Slow frame: %v (render %v, %d scene walks). Top tasks: %s",
		d, profiling.SumWithPrefix("graphics."), profiling.Calls("scene.Draws"), profiling.TopN(5))
}

func statusLine(fps, draws int, s *scene.Scene) string {
	return fmt.Sprintf("%d FPS  %d draws  %d objects  %d models  %d textures",
		fps, draws, len(s.Objects()), len(s.Models()), len(s.Textures()))
}

// orbitRadius keeps the whole grid in view.
func orbitRadius(count int) float32 {
	side := math.Ceil(math.Sqrt(float64(max(count, 1))))
	return float32(side*gridSpacing) + 6
}
