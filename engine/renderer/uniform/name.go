package uniform

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// Name is a uniform identifier paired with the murmur3 hash of its text.
// Names compare by hash; equal hashes over different text is treated as a fatal collision.
type Name struct {
	name string
	hash uint32
}

// NewName creates a Name and computes its hash.
//
// Parameters:
//   - name: the uniform identifier as written in shader source
//
// Returns:
//   - Name: the hashed name
func NewName(name string) Name {
	return Name{name: name, hash: hashName(name)}
}

func hashName(name string) uint32 {
	return murmur3.Sum32WithSeed([]byte(name), 0)
}

// String returns the identifier text.
func (n Name) String() string { return n.name }

// Hash returns the murmur3 hash of the identifier.
func (n Name) Hash() uint32 { return n.hash }

// SetName replaces the identifier text and recomputes the hash.
func (n *Name) SetName(name string) {
	n.name = name
	n.hash = hashName(name)
}

// Equal reports whether two names refer to the same identifier.
// It panics if the hashes collide for different text.
func (n Name) Equal(other Name) bool {
	if n.hash != other.hash {
		return false
	}
	if n.name != other.name {
		panic(fmt.Sprintf("uniform name hash collision: %q and %q share hash %#08x", n.name, other.name, n.hash))
	}
	return true
}
