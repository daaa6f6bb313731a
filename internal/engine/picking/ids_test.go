package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceSequences(t *testing.T) {
	ns := NewNamespace()

	for want := LegacyBase; want < LegacyBase+3; want++ {
		id, err := ns.Next(KindLegacy)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
	for want := ShaderBase; want < ShaderBase+3; want++ {
		id, err := ns.Next(KindShader)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestNamespaceLegacyRangeIsBounded(t *testing.T) {
	ns := NewNamespace()
	for i := LegacyBase; i < ShaderBase; i++ {
		_, err := ns.Next(KindLegacy)
		require.NoError(t, err)
	}

	_, err := ns.Next(KindLegacy)
	assert.ErrorIs(t, err, ErrNamespaceFull)

	// shader range is unaffected
	id, err := ns.Next(KindShader)
	require.NoError(t, err)
	assert.Equal(t, ShaderBase, id)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		id     uint32
		kind   Kind
		wantOK bool
	}{
		{NoObject, 0, false},
		{1, KindLegacy, true},
		{99, KindLegacy, true},
		{100, KindShader, true},
		{MaxID, KindShader, true},
		{Background, 0, false},
	}
	for _, tt := range tests {
		kind, ok := KindOf(tt.id)
		assert.Equal(t, tt.wantOK, ok, "id %d", tt.id)
		if ok {
			assert.Equal(t, tt.kind, kind, "id %d", tt.id)
		}
	}
}
