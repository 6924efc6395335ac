package server

import (
	"sync"
	"time"
)

// ComponentStatus is the last observed state of one dependency.
type ComponentStatus struct {
	Healthy     bool      `json:"healthy"`
	LastCheck   time.Time `json:"last_check"`
	LastSuccess time.Time `json:"last_success,omitzero"`
	Message     string    `json:"message,omitempty"`
}

// Health records the outcome of recent kit requests per component. It never
// affects liveness: a degraded provider still produces fallback kits.
type Health struct {
	mu         sync.RWMutex
	components map[string]*ComponentStatus
}

// NewHealth creates an empty health tracker.
func NewHealth() *Health {
	return &Health{
		components: make(map[string]*ComponentStatus),
	}
}

// SetHealthy marks a component as healthy.
func (h *Health) SetHealthy(component, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	status := h.status(component)
	status.Healthy = true
	status.LastCheck = now
	status.LastSuccess = now
	status.Message = message
}

// SetDegraded marks a component as not healthy with a reason.
func (h *Health) SetDegraded(component, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	status := h.status(component)
	status.Healthy = false
	status.LastCheck = time.Now()
	status.Message = message
}

// status returns the entry for component, creating it. Callers hold mu.
func (h *Health) status(component string) *ComponentStatus {
	s, ok := h.components[component]
	if !ok {
		s = &ComponentStatus{}
		h.components[component] = s
	}
	return s
}

// Snapshot returns a copy of every component status.
func (h *Health) Snapshot() map[string]ComponentStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make(map[string]ComponentStatus, len(h.components))
	for name, s := range h.components {
		result[name] = *s
	}
	return result
}
