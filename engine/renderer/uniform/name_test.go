package uniform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameHashing(t *testing.T) {
	a := NewName("u_mvp")
	b := NewName("u_mvp")
	c := NewName("u_color")

	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "u_mvp", a.String())
}

func TestNameSetNameRehashes(t *testing.T) {
	n := NewName("")
	empty := n.Hash()

	n.SetName("u_color")
	assert.NotEqual(t, empty, n.Hash())
	assert.Equal(t, NewName("u_color").Hash(), n.Hash())
	assert.True(t, n.Equal(NewName("u_color")))
}

func TestNameCollisionPanics(t *testing.T) {
	forged := Name{name: "other", hash: NewName("u_mvp").Hash()}
	assert.Panics(t, func() { NewName("u_mvp").Equal(forged) })
}

func TestUniformMaterial(t *testing.T) {
	u := NewUniformMaterial("u_time", NewData[float32](0))
	u.SetF32(2.5)
	assert.Equal(t, float32(2.5), u.GetF32())

	u.SetName("u_elapsed")
	assert.Equal(t, "u_elapsed", u.Name().String())

	m := NewUniformMaterial("u_mvp", NewData(IdentityMat4()))
	assert.Panics(t, func() { m.SetF32(1) })
	assert.Equal(t, IdentityMat4(), Get[Mat4](m.Data()))
}
