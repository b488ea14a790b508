package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	assert.True(t, IsValidUUID(id))
	assert.NotEqual(t, id, GenerateID())
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}

func TestPtrDerefOr(t *testing.T) {
	assert.Equal(t, 7, DerefOr(Ptr(7), 1))
	assert.Equal(t, "fallback", DerefOr[string](nil, "fallback"))
	assert.False(t, DerefOr(Ptr(false), true))
}
