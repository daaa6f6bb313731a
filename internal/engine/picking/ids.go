package picking

import (
	"errors"
	"fmt"
)

// Reserved IDs and namespace bases. Legacy (immediate-mode) objects are numbered
// from LegacyBase, shader objects from ShaderBase, so the two never collide.
const (
	NoObject   uint32 = 0
	Background uint32 = 0x00FFFFFF // white clear color of the ID pass
	LegacyBase uint32 = 1
	ShaderBase uint32 = 100
	MaxID      uint32 = Background - 1
)

// Kind selects the ID range an object is numbered from.
type Kind int

const (
	KindLegacy Kind = iota
	KindShader
)

func (k Kind) String() string {
	switch k {
	case KindLegacy:
		return "legacy"
	case KindShader:
		return "shader"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrNamespaceFull is returned when a kind runs out of IDs.
var ErrNamespaceFull = errors.New("picking: id namespace exhausted")

// Namespace hands out object IDs in strictly increasing order per kind.
type Namespace struct {
	nextLegacy uint32
	nextShader uint32
}

// NewNamespace returns a namespace starting at the base of each kind.
func NewNamespace() *Namespace {
	return &Namespace{nextLegacy: LegacyBase, nextShader: ShaderBase}
}

// Next returns the next free ID of the given kind.
func (n *Namespace) Next(kind Kind) (uint32, error) {
	switch kind {
	case KindLegacy:
		if n.nextLegacy >= ShaderBase {
			return 0, fmt.Errorf("%w: %s ids stop at %d", ErrNamespaceFull, kind, ShaderBase-1)
		}
		id := n.nextLegacy
		n.nextLegacy++
		return id, nil
	case KindShader:
		if n.nextShader > MaxID {
			return 0, fmt.Errorf("%w: %s ids stop at %#x", ErrNamespaceFull, kind, MaxID)
		}
		id := n.nextShader
		n.nextShader++
		return id, nil
	default:
		return 0, fmt.Errorf("picking: unknown id kind %v", kind)
	}
}

// KindOf reports which range an ID belongs to. ok is false for reserved values.
func KindOf(id uint32) (kind Kind, ok bool) {
	switch {
	case id == NoObject || id > MaxID:
		return 0, false
	case id < ShaderBase:
		return KindLegacy, true
	default:
		return KindShader, true
	}
}

// IDTable answers whether an ID belongs to a live object.
type IDTable interface {
	Contains(id uint32) bool
}
