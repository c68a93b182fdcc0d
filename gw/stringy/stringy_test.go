package stringy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStartsImmutable(t *testing.T) {
	s := From("hello")

	assert.False(t, s.IsMutable())
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 5, s.Len())
}

func TestMutatePromotesAndStaysMutable(t *testing.T) {
	s := From("hello")

	s.Mutate(func(buf *[]byte) {
		*buf = append(*buf, " world"...)
	})

	assert.True(t, s.IsMutable())
	assert.Equal(t, "hello world", s.String())

	// A second mutation must not revert the representation.
	s.Mutate(func(buf *[]byte) {
		*buf = (*buf)[:5]
	})
	assert.True(t, s.IsMutable())
	assert.Equal(t, "hello", s.String())
}

func TestCloneOfMutableDoesNotAlias(t *testing.T) {
	s := From("base")
	s.Mutate(func(buf *[]byte) { (*buf)[0] = 'c' })

	clone := s.Clone()
	s.Mutate(func(buf *[]byte) { (*buf)[0] = 'v' })

	assert.Equal(t, "vase", s.String())
	assert.Equal(t, "case", clone.String())
}

func TestCloneOfImmutableStaysImmutable(t *testing.T) {
	s := From("shared")
	clone := s.Clone()

	assert.False(t, clone.IsMutable())
	assert.True(t, s.Equal(clone))
}

func TestEqualIgnoresRepresentation(t *testing.T) {
	a := From("same")
	b := From("same")
	b.Mutate(func(buf *[]byte) {})

	assert.True(t, b.IsMutable())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(From("other")))
}

func TestJSONRoundTrip(t *testing.T) {
	s := From("payload")
	s.Mutate(func(buf *[]byte) { *buf = append(*buf, '!') })

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"payload!"`, string(data))

	var decoded Stringy
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.IsMutable())
	assert.Equal(t, "payload!", decoded.String())
}
