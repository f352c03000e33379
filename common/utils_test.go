package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 3, 4))
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, "", Coalesce[string]())
}

func TestSwapRedBlue(t *testing.T) {
	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	SwapRedBlue(pixels)
	assert.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 8, 9}, pixels)
}
