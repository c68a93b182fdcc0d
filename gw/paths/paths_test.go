package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllVariantsCanonicalizeIdentically(t *testing.T) {
	const raw = "some/dir/file.txt"

	variants := []PathValue{
		FromBuffer(raw),
		FromBorrowed(raw),
		FromString(raw),
		FromContent(raw),
	}

	for _, v := range variants {
		assert.Equal(t, raw, v.Filepath(), "variant %s", v.Kind())
		assert.Equal(t, raw, v.String(), "variant %s", v.Kind())
	}
}

func TestStructuralEqualityDistinguishesVariants(t *testing.T) {
	content := FromContent("a/b")
	buffer := FromBuffer("a/b")

	// Disk-equivalent but structurally distinct.
	assert.False(t, content.Equal(buffer))
	assert.True(t, content.Equal(FromContent("a/b")))
	assert.False(t, content.Equal(FromContent("a/c")))
}

func TestSamePathIgnoresVariantAndCleans(t *testing.T) {
	content := FromContent("a/b")
	buffer := FromBuffer("a/./b")

	assert.True(t, content.SamePath(buffer))
	assert.False(t, content.SamePath(FromBuffer("a/c")))
}

func TestBaseDirJoin(t *testing.T) {
	p := FromBorrowed("etc/groundwork/config.yaml")

	assert.Equal(t, "config.yaml", p.Base())
	assert.Equal(t, "etc/groundwork", p.Dir())

	joined := p.Join("..", "cache")
	assert.Equal(t, KindBuffer, joined.Kind())
	assert.Equal(t, "etc/groundwork/cache", joined.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Buffer", FromBuffer("x").Kind().String())
	assert.Equal(t, "Borrowed", FromBorrowed("x").Kind().String())
	assert.Equal(t, "Str", FromString("x").Kind().String())
	assert.Equal(t, "Content", FromContent("x").Kind().String())
}
