package vulkan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceDestroyedAfterLastChild(t *testing.T) {
	var events []string
	d := newDevice(func() { events = append(events, "device") })
	d.AfterDestroy(func() { events = append(events, "instance") })
	d.AfterDestroy(func() { events = append(events, "surface") })

	swapchain := d.Retain()
	pipeline := d.Retain()
	assert.Equal(t, 3, d.Refs())

	d.Release()
	swapchain.Release()
	assert.Empty(t, events)

	pipeline.Release()
	assert.Equal(t, []string{"device", "surface", "instance"}, events)
	assert.Zero(t, d.Refs())
}

func TestDeviceOverRelease(t *testing.T) {
	d := newDevice(func() {})
	d.Release()
	assert.Panics(t, d.Release)
	assert.Panics(t, func() { d.Retain() })
}

func TestValidateSPIRV(t *testing.T) {
	assert.ErrorIs(t, ValidateSPIRV(nil), ErrInvalidSPIRV)
	assert.ErrorIs(t, ValidateSPIRV([]byte{0x03, 0x02, 0x23}), ErrInvalidSPIRV)
	assert.NoError(t, ValidateSPIRV([]byte{0x03, 0x02, 0x23, 0x07}))
}
