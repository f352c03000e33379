package window

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nativeStub stands in for a native window in the replacement tests.
type nativeStub struct {
	version  string
	released bool
}

// contextWalk mimics a driver that only creates contexts up to maxVersion.
func contextWalk(current *nativeStub, maxVersion int, tries []int) (*nativeStub, []error) {
	var errs []error
	for _, v := range tries {
		next, err := replaceWindow(current, func() (*nativeStub, error) {
			if v > maxVersion {
				return nil, fmt.Errorf("version %d unsupported", v)
			}
			return &nativeStub{version: fmt.Sprint(v)}, nil
		}, func(old *nativeStub) {
			old.released = true
		})
		errs = append(errs, err)
		current = next
		if err == nil {
			break
		}
	}
	return current, errs
}

func TestReplaceWindowKeepsCurrentOnFailure(t *testing.T) {
	initial := &nativeStub{version: "none"}

	got, err := replaceWindow(initial, func() (*nativeStub, error) {
		return nil, errors.New("no context")
	}, func(old *nativeStub) { old.released = true })

	require.Error(t, err)
	assert.Same(t, initial, got)
	assert.False(t, initial.released)
}

func TestReplaceWindowRetriesAfterFailure(t *testing.T) {
	initial := &nativeStub{version: "none"}

	got, errs := contextWalk(initial, 45, []int{46, 45, 44})

	require.Len(t, errs, 2)
	assert.Error(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, "45", got.version)
	assert.True(t, initial.released)
	assert.False(t, got.released)
}

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()

	assert.Equal(t, "oxy-rad", w.title)
	assert.Equal(t, 1280, w.width)
	assert.Equal(t, 720, w.height)
	assert.True(t, w.hints.resizable)
	assert.True(t, w.hints.visible)
	assert.Nil(t, w.internalWindow)
}

func TestNewEngineWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("demo"),
		WithSize(0, 480),
		WithSamples(-2),
		WithVisible(false),
		WithResizable(false),
		WithDebugContext(true),
	)

	assert.Equal(t, "demo", w.title)
	assert.Equal(t, 1280, w.width)
	assert.Equal(t, 480, w.height)
	assert.Zero(t, w.hints.samples)
	assert.False(t, w.hints.visible)
	assert.False(t, w.hints.resizable)
	assert.True(t, w.hints.debugContext)
}

func TestSizeLimitsClamp(t *testing.T) {
	tests := []struct {
		name   string
		limits sizeLimits
		in     [2]int
		want   [2]int
	}{
		{"open", sizeLimits{}, [2]int{10, 10}, [2]int{10, 10}},
		{"below minimum", sizeLimits{minWidth: 320, minHeight: 240}, [2]int{100, 100}, [2]int{320, 240}},
		{"above maximum", sizeLimits{maxWidth: 800, maxHeight: 600}, [2]int{1920, 1080}, [2]int{800, 600}},
		{"one bound", sizeLimits{maxHeight: 600}, [2]int{1920, 1080}, [2]int{1920, 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.limits.clamp(tt.in[0], tt.in[1])
			assert.Equal(t, tt.want, [2]int{w, h})
		})
	}
}

func TestWithSizeLimitsClampsInitialSize(t *testing.T) {
	w := newEngineWindow(WithSize(2000, 100), WithSizeLimits(200, 150, 1600, 1200))

	assert.Equal(t, 1600, w.width)
	assert.Equal(t, 150, w.height)
}
