package config

import "sync"

// RegistrySettings holds scene table configuration
type RegistrySettings struct {
	mu                   sync.RWMutex
	objectIndexThreshold int
}

var globalRegistrySettings = &RegistrySettings{
	objectIndexThreshold: 32,
}

// GetObjectIndexThreshold returns the object count above which scenes keep a
// hashed identity index instead of scanning the table
func GetObjectIndexThreshold() int {
	globalRegistrySettings.mu.RLock()
	defer globalRegistrySettings.mu.RUnlock()
	return globalRegistrySettings.objectIndexThreshold
}

// SetObjectIndexThreshold sets the object index threshold. Zero means always index.
func SetObjectIndexThreshold(n int) {
	globalRegistrySettings.mu.Lock()
	defer globalRegistrySettings.mu.Unlock()
	if n < 0 {
		n = 0
	}
	globalRegistrySettings.objectIndexThreshold = n
}
