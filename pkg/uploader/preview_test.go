package uploader

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewLifecycle(t *testing.T) {
	m := NewPreviewManager()

	p, err := m.Create(File{Name: "a.jpg", Data: []byte("bytes")})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Active())

	data, err := os.ReadFile(p.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), data)

	m.Release(p.ID)
	assert.Equal(t, 0, m.Active())
	_, err = os.Stat(p.Path)
	assert.True(t, os.IsNotExist(err))

	// Double release is a no-op.
	m.Release(p.ID)
}

func TestPreviewReleaseAll(t *testing.T) {
	m := NewPreviewManager()

	p1, err := m.Create(File{Name: "a.jpg", Data: []byte("a")})
	require.NoError(t, err)
	p2, err := m.Create(File{Name: "b.jpg", Data: []byte("b")})
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, p2.ID)
	assert.Equal(t, 2, m.Active())

	m.ReleaseAll()
	assert.Equal(t, 0, m.Active())

	for _, p := range []*Preview{p1, p2} {
		_, err := os.Stat(p.Path)
		assert.True(t, os.IsNotExist(err))
	}
}
