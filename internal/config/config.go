package config

import "sync"

// ViewSettings holds camera and window configuration for the viewer
type ViewSettings struct {
	mu           sync.RWMutex
	fieldOfView  float32 // vertical, in degrees
	windowWidth  int
	windowHeight int
}

var globalViewSettings = &ViewSettings{
	fieldOfView:  60.0,
	windowWidth:  900,
	windowHeight: 600,
}

// GetFieldOfView returns the vertical field of view in degrees
func GetFieldOfView() float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.fieldOfView
}

// SetFieldOfView sets the vertical field of view in degrees
func SetFieldOfView(degrees float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	// Clamp to reasonable values
	if degrees < 30 {
		degrees = 30
	}
	if degrees > 110 {
		degrees = 110
	}

	globalViewSettings.fieldOfView = degrees
}

// GetWindowSize returns the initial window size in screen coordinates
func GetWindowSize() (int, int) {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.windowWidth, globalViewSettings.windowHeight
}

// SetWindowSize sets the initial window size. Non-positive dimensions are ignored.
func SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.windowWidth = width
	globalViewSettings.windowHeight = height
}

