package config

import "sync"

// RuntimeSettings holds settings that can change while the game runs.
type RuntimeSettings struct {
	mu         sync.RWMutex
	fpsLimit   int // 0 means uncapped
	debugBoxes bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60,
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values uncap, small positive
// values are raised to 30.
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 30 {
		limit = 30
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetDebugBoxes reports whether world AABBs are drawn
func GetDebugBoxes() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.debugBoxes
}

// SetDebugBoxes enables or disables the AABB wireframes
func SetDebugBoxes(enabled bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.debugBoxes = enabled
}

// ToggleDebugBoxes flips the AABB wireframes and returns the new value
func ToggleDebugBoxes() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.debugBoxes = !globalRuntimeSettings.debugBoxes
	return globalRuntimeSettings.debugBoxes
}
