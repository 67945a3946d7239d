package resources

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderCachesBytes(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/success-sound.mp3": {Data: []byte("tada")},
	}
	loader := NewLoader(fsys)

	data, err := loader.Bytes("sounds/success-sound.mp3")
	require.NoError(t, err)
	assert.Equal(t, []byte("tada"), data)

	delete(fsys, "sounds/success-sound.mp3")
	cached, err := loader.Bytes("sounds/./success-sound.mp3")
	require.NoError(t, err)
	assert.Equal(t, data, cached)
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})

	_, err := loader.Bytes("sounds/study-music-1.mp3")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, loader.Exists("sounds/study-music-1.mp3"))
}

func TestLoaderResource(t *testing.T) {
	loader := NewLoader(fstest.MapFS{
		IconPath: {Data: []byte{0x89, 'P', 'N', 'G'}},
		"images": {Mode: fs.ModeDir},
	})

	resource, err := loader.Resource(IconPath)
	require.NoError(t, err)
	assert.Equal(t, "icon.png", resource.Name())
	assert.True(t, loader.Exists(IconPath))
	assert.False(t, loader.Exists("images"))
}
