package server

import (
	"errors"
	"io/fs"
)

// Overlay returns a file system that looks up names in primary first and
// falls back to secondary when primary does not have them.
func Overlay(primary, secondary fs.FS) fs.FS {
	return overlayFS{primary: primary, secondary: secondary}
}

type overlayFS struct {
	primary   fs.FS
	secondary fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || o.secondary == nil {
		return nil, err
	}
	return o.secondary.Open(name)
}
