package uploader

import (
	"fmt"
	"os"
	"sync"
)

// Preview is a transient local handle for UI feedback before upload.
// No server interaction happens here.
type Preview struct {
	ID   string
	Path string
}

// PreviewManager owns the preview handles of one selection widget.
// Every Create must be paired with a Release, and ReleaseAll runs when
// the widget is torn down, so handles never outlive their owner.
type PreviewManager struct {
	mu       sync.Mutex
	previews map[string]*Preview
	next     int
}

func NewPreviewManager() *PreviewManager {
	return &PreviewManager{
		previews: make(map[string]*Preview),
	}
}

// Create materializes the file into a temp path the UI can display.
func (m *PreviewManager) Create(file File) (*Preview, error) {
	tmp, err := os.CreateTemp("", "photo-preview-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create preview file: %w", err)
	}
	if _, err := tmp.Write(file.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write preview file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to close preview file: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	p := &Preview{
		ID:   fmt.Sprintf("preview-%d", m.next),
		Path: tmp.Name(),
	}
	m.previews[p.ID] = p
	return p, nil
}

// Release frees one handle when its file leaves the pending selection.
// Releasing an unknown or already-released ID is a no-op.
func (m *PreviewManager) Release(id string) {
	m.mu.Lock()
	p, ok := m.previews[id]
	delete(m.previews, id)
	m.mu.Unlock()

	if ok {
		os.Remove(p.Path)
	}
}

// ReleaseAll frees every handle; called on widget teardown.
func (m *PreviewManager) ReleaseAll() {
	m.mu.Lock()
	previews := m.previews
	m.previews = make(map[string]*Preview)
	m.mu.Unlock()

	for _, p := range previews {
		os.Remove(p.Path)
	}
}

// Active returns the number of live handles.
func (m *PreviewManager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.previews)
}
