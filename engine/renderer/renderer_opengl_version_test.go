package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoContext = errors.New("no context")

type attempt struct{ major, minor uint32 }

// recordWalk runs a negotiation where only accept (if non-nil) succeeds.
func recordWalk(t *testing.T, min, max Version, v glVariant, accept *attempt) ([]attempt, uint32, uint32, error) {
	t.Helper()
	var tried []attempt
	major, minor, err := negotiateContextVersion(min, max, v, func(major, minor uint32) error {
		tried = append(tried, attempt{major, minor})
		require.Less(t, len(tried), 100, "walk does not terminate")
		if accept != nil && *accept == (attempt{major, minor}) {
			return nil
		}
		return errNoContext
	})
	return tried, major, minor, err
}

func fullRange() (Version, Version) {
	return Version{Major: Lowest(), Minor: Lowest()}, Version{Major: Highest(), Minor: Highest()}
}

func TestNegotiateContextVersionFullWalk(t *testing.T) {
	min, max := fullRange()

	t.Run("desktop", func(t *testing.T) {
		tried, _, _, err := recordWalk(t, min, max, glDesktop, nil)
		require.ErrorIs(t, err, ErrError)

		var want []attempt
		for major := uint32(4); major >= 1; major-- {
			for minor := int(glDesktop.maxMinor[major]); minor >= 0; minor-- {
				want = append(want, attempt{major, uint32(minor)})
			}
		}
		assert.Equal(t, want, tried)
		assert.Len(t, tried, 19)
	})

	t.Run("es", func(t *testing.T) {
		tried, _, _, err := recordWalk(t, min, max, glES, nil)
		require.ErrorIs(t, err, ErrError)
		assert.Equal(t, []attempt{{3, 2}, {3, 1}, {3, 0}, {2, 0}, {1, 1}, {1, 0}}, tried)
	})
}

func TestNegotiateContextVersionNeverSkips(t *testing.T) {
	min, max := fullRange()
	for _, v := range []glVariant{glDesktop, glES} {
		t.Run(v.name, func(t *testing.T) {
			tried, _, _, _ := recordWalk(t, min, max, v, nil)
			require.NotEmpty(t, tried)
			for i := 1; i < len(tried); i++ {
				prev, cur := tried[i-1], tried[i]
				if prev.minor > 0 {
					assert.Equal(t, attempt{prev.major, prev.minor - 1}, cur)
				} else {
					assert.Equal(t, attempt{prev.major - 1, v.maxMinor[prev.major-1]}, cur)
				}
			}
		})
	}
}

func TestNegotiateContextVersionAccepts(t *testing.T) {
	min, max := fullRange()

	for _, v := range []glVariant{glDesktop, glES} {
		for major := uint32(1); int(major) < len(v.maxMinor); major++ {
			for minor := uint32(0); minor <= v.maxMinor[major]; minor++ {
				want := attempt{major, minor}
				tried, gotMajor, gotMinor, err := recordWalk(t, min, max, v, &want)
				require.NoError(t, err)
				assert.Equal(t, want, attempt{gotMajor, gotMinor})
				assert.Equal(t, want, tried[len(tried)-1])
			}
		}
	}
}

func TestNegotiateContextVersionStopsAtMinimum(t *testing.T) {
	_, max := fullRange()
	min := Version{Major: Value(3), Minor: Value(2)}

	tried, _, _, err := recordWalk(t, min, max, glDesktop, nil)
	require.ErrorIs(t, err, ErrError)
	assert.Equal(t, attempt{3, 2}, tried[len(tried)-1])
	assert.Len(t, tried, 9)
}

func TestNegotiateContextVersionMaxBelowMin(t *testing.T) {
	min := Version{Major: Value(3), Minor: Value(0)}
	max := Version{Major: Value(2), Minor: Value(1)}

	tried, _, _, err := recordWalk(t, min, max, glDesktop, nil)
	require.ErrorIs(t, err, ErrError)
	assert.Empty(t, tried)
}

func TestNegotiateContextVersionInvalidHighestMinor(t *testing.T) {
	min, _ := fullRange()
	max := Version{Major: Value(5), Minor: Highest()}

	_, _, _, err := recordWalk(t, min, max, glDesktop, nil)
	require.ErrorIs(t, err, ErrInvalidVersion)

	_, _, _, err = recordWalk(t, min, Version{Major: Value(4), Minor: Highest()}, glES, nil)
	require.ErrorIs(t, err, ErrInvalidVersion)
}

func TestNegotiateContextVersionUnknownMajorTerminates(t *testing.T) {
	min, _ := fullRange()
	max := Version{Major: Value(6), Minor: Value(1)}

	tried, _, _, err := recordWalk(t, min, max, glDesktop, nil)
	require.ErrorIs(t, err, ErrError)
	assert.Equal(t, []attempt{{6, 1}, {6, 0}, {5, 0}, {4, 6}}, tried[:4])
	assert.Equal(t, attempt{1, 0}, tried[len(tried)-1])
}
