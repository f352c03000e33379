package renderer

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/opengl"
)

// glVariant describes the version space of desktop OpenGL or OpenGL ES.
type glVariant struct {
	name         string
	highestMajor uint32
	maxMinor     []uint32
}

var (
	glDesktop = glVariant{name: "OpenGL", highestMajor: 4, maxMinor: opengl.GLMaxMinor}
	glES      = glVariant{name: "OpenGLES", highestMajor: 3, maxMinor: opengl.GLESMaxMinor}
)

func (v glVariant) major(n VersionNum) uint32 {
	switch n.Kind {
	case VersionHighest:
		return v.highestMajor
	case VersionLowest:
		return 1
	}
	return n.N
}

func (v glVariant) minor(major uint32, n VersionNum) (uint32, error) {
	switch n.Kind {
	case VersionHighest:
		if major >= 1 && int(major) < len(v.maxMinor) {
			return v.maxMinor[major], nil
		}
		return 0, fmt.Errorf("%s has no major version %d: %w", v.name, major, ErrInvalidVersion)
	case VersionLowest:
		return 0, nil
	}
	return n.N, nil
}

// highestMinor returns the last minor version of a major version, or 0 for majors outside the table.
func (v glVariant) highestMinor(major uint32) uint32 {
	if int(major) < len(v.maxMinor) {
		return v.maxMinor[major]
	}
	return 0
}

func versionBelow(major, minor, minMajor, minMinor uint32) bool {
	return major < minMajor || (major == minMajor && minor < minMinor)
}

// negotiateContextVersion walks down from max to min one minor version at a time, wrapping to the
// highest minor of the previous major, and calls try for each candidate until one succeeds.
//
// Parameters:
//   - min: the lowest acceptable version
//   - max: the first version to try
//   - v: the API variant whose version tables apply
//   - try: attempts to create a context of the given version
//
// Returns:
//   - major, minor: the version try accepted
//   - error: ErrInvalidVersion if a bound cannot be resolved, ErrError if every candidate failed
func negotiateContextVersion(min, max Version, v glVariant, try func(major, minor uint32) error) (uint32, uint32, error) {
	major := v.major(max.Major)
	minor, err := v.minor(major, max.Minor)
	if err != nil {
		return 0, 0, err
	}
	minMajor := v.major(min.Major)
	minMinor, err := v.minor(minMajor, min.Minor)
	if err != nil {
		return 0, 0, err
	}

	var lastErr error
	for major > 0 && !versionBelow(major, minor, minMajor, minMinor) {
		if lastErr = try(major, minor); lastErr == nil {
			return major, minor, nil
		}
		log.Printf("[%s] context %d.%d unavailable: %v", v.name, major, minor, lastErr)

		if minor > 0 {
			minor--
		} else {
			major--
			minor = v.highestMinor(major)
		}
	}
	if lastErr == nil {
		return 0, 0, fmt.Errorf("%s: maximum version %s is below minimum %s: %w", v.name, max, min, ErrError)
	}
	return 0, 0, fmt.Errorf("%s: no context between %s and %s (last: %v): %w", v.name, min, max, lastErr, ErrError)
}
