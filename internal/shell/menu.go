package shell

import "sync"

// Menu is the open/closed state of the navigation drawer. It only changes in
// response to the hamburger and to clicks on the main content.
type Menu struct {
	mu   sync.Mutex
	open bool
}

// Toggle flips the drawer and returns the new state.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open
}

// Close closes the drawer. Closing a closed drawer is a no-op.
func (m *Menu) Close() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	return m.open
}
