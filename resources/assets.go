// Package resources loads sound and image files from the assets directory.
package resources

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"fyne.io/fyne/v2"
)

// IconPath is the optional application icon inside the assets directory.
const IconPath = "images/icon.png"

// Loader reads files from an assets tree and caches their contents.
type Loader struct {
	fsys  fs.FS
	cache sync.Map
}

// NewLoader creates a loader on top of fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Dir creates a loader for the assets directory at root.
func Dir(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Bytes returns the contents of the file at name. Missing files return an
// error wrapping fs.ErrNotExist.
func (loader *Loader) Bytes(name string) ([]byte, error) {
	name = path.Clean(name)
	if cached, ok := loader.cache.Load(name); ok {
		return cached.([]byte), nil
	}

	data, err := fs.ReadFile(loader.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", name, err)
	}

	loader.cache.Store(name, data)
	return data, nil
}

// Resource returns a Fyne resource for the file at name.
func (loader *Loader) Resource(name string) (fyne.Resource, error) {
	data, err := loader.Bytes(name)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(path.Base(name), data), nil
}

// Exists reports whether name is a readable file.
func (loader *Loader) Exists(name string) bool {
	info, err := fs.Stat(loader.fsys, path.Clean(name))
	return err == nil && !info.IsDir()
}
