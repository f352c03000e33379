package opengl

import (
	"errors"
	"unsafe"
)

// NewES reports that OpenGL ES contexts are not available on darwin.
func NewES(getProcAddr func(name string) unsafe.Pointer) (Functions, error) {
	return nil, errors.New("OpenGL ES is not available on darwin")
}
