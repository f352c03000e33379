package renderer

import "errors"

var (
	// ErrError is a generic backend failure.
	ErrError = errors.New("renderer error")
	// ErrShaderCompile is returned when a shader fails to compile or a program fails to link.
	ErrShaderCompile = errors.New("shader compile failed")
	// ErrInvalidCast marks a handle used with a backend that did not create it.
	ErrInvalidCast = errors.New("invalid cast")
	// ErrUnsupportedAPI is returned when the requested API is unavailable on this system.
	ErrUnsupportedAPI = errors.New("unsupported api")
	// ErrUnimplemented is returned by operations a backend does not provide.
	ErrUnimplemented = errors.New("unimplemented")
	// ErrInvalidVersion is returned when a version cannot be resolved for the backend.
	ErrInvalidVersion = errors.New("invalid version")
)
