// Package navigation models the client's stack navigator server-side: one
// route stack per device, advanced only by the flow services. Clients read
// the stack back to mirror it, so every transition the controllers decide
// is observable and testable in one place.
package navigation

import (
	"sync"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
)

// Route is one entry on a device's navigation stack.
type Route struct {
	Screen entity.Screen     `json:"screen"`
	Params map[string]string `json:"params,omitempty"`
}

// Stack is a device's navigation state. The zero value is not usable;
// stacks are created by the Manager with Login as the root route.
type Stack struct {
	mu     sync.Mutex
	routes []Route
}

func newStack(initial entity.Screen) *Stack {
	return &Stack{routes: []Route{{Screen: initial}}}
}

// Push appends a destination to the stack.
func (s *Stack) Push(screen entity.Screen, params map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, Route{Screen: screen, Params: params})
}

// Replace swaps the top of the stack for the destination.
func (s *Stack) Replace(screen entity.Screen, params map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[len(s.routes)-1] = Route{Screen: screen, Params: params}
}

// Reset discards the stack and installs the given routes, matching the
// client navigator's reset action. Empty input resets to Login.
func (s *Stack) Reset(screens ...entity.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(screens) == 0 {
		screens = []entity.Screen{entity.ScreenLogin}
	}
	routes := make([]Route, 0, len(screens))
	for _, sc := range screens {
		routes = append(routes, Route{Screen: sc})
	}
	s.routes = routes
}

// GoBack pops the top route. Popping the root is a no-op, as in the
// client navigator.
func (s *Stack) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.routes) > 1 {
		s.routes = s.routes[:len(s.routes)-1]
	}
}

// Current returns the active route.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routes[len(s.routes)-1]
}

// Routes returns a copy of the stack, root first.
func (s *Stack) Routes() []Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}

// Depth returns the number of routes on the stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.routes)
}

// Manager owns one Stack per device.
type Manager struct {
	mu     sync.Mutex
	stacks map[string]*Stack
}

func NewManager() *Manager {
	return &Manager{stacks: make(map[string]*Stack)}
}

// Stack returns the device's stack, creating it at Login on first use.
func (m *Manager) Stack(deviceID string) *Stack {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stacks[deviceID]
	if !ok {
		st = newStack(entity.ScreenLogin)
		m.stacks[deviceID] = st
	}
	return st
}

// Drop forgets a device's stack (logout, account deletion).
func (m *Manager) Drop(deviceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stacks, deviceID)
}
