package directx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAdapterSkipsSoftware(t *testing.T) {
	adapters := []AdapterDesc{
		{Description: "Microsoft Basic Render Driver", Software: true},
		{Description: "Integrated", VendorID: 0x8086},
		{Description: "Discrete", VendorID: 0x10de},
	}
	i, err := SelectAdapter(adapters)
	assert.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestSelectAdapterNone(t *testing.T) {
	_, err := SelectAdapter(nil)
	assert.ErrorIs(t, err, ErrNoAdapter)

	_, err = SelectAdapter([]AdapterDesc{{Software: true}})
	assert.ErrorIs(t, err, ErrNoAdapter)
}

func TestPreferenceEnumeration(t *testing.T) {
	assert.False(t, PreferenceUnspecified.ByGpuPreference())
	assert.True(t, PreferenceMinimumPower.ByGpuPreference())
	assert.True(t, PreferenceHighPerformance.ByGpuPreference())
	assert.Equal(t, "minimum power", PreferenceMinimumPower.String())
}

func TestIsNoInterface(t *testing.T) {
	err := fmt.Errorf("cast swapchain: %w", ErrorCode{Name: "QueryInterface", Code: E_NOINTERFACE})
	assert.True(t, IsNoInterface(err))
	assert.Equal(t, "cast swapchain: QueryInterface: 0x80004002", err.Error())
	assert.False(t, IsNoInterface(ErrorCode{Name: "EnumAdapters1", Code: DXGI_ERROR_NOT_FOUND}))
	assert.False(t, IsNoInterface(ErrNoAdapter))
}
