package version

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	channels := []Channel{
		ChannelProduction,
		ChannelReleaseCandidate,
		ChannelBeta,
		ChannelAlpha,
		ChannelPatched,
	}

	for _, channel := range channels {
		for _, parts := range [][3]int{
			{0, 0, 0},
			{1, 2, 3},
			{31, 15, 15},
			{12, 0, 9},
		} {
			number := fmt.Sprintf("%d.%d.%d", parts[0], parts[1], parts[2])
			original := New(number, channel)
			decoded := Decode(original.Encode())

			assert.Equal(t, number, decoded.Number.String())
			assert.Equal(t, channel, decoded.Channel)
		}
	}
}

func TestEncodeTruncatesOversizedComponents(t *testing.T) {
	// 32 overflows the 5-bit major field and wraps to 0.
	v := New("32.16.16", ChannelProduction)
	decoded := Decode(v.Encode())
	assert.Equal(t, "0.0.0", decoded.Number.String())
}

func TestEncodeUnparsableNumberYieldsZero(t *testing.T) {
	assert.Equal(t, uint16(0), New("not-a-version", ChannelBeta).Encode())
	assert.Equal(t, uint16(0), New("1.2", ChannelBeta).Encode())
	assert.Equal(t, uint16(0), New("1.2.3.4", ChannelBeta).Encode())
}

func TestDecodeUnknownChannelBecomesPatched(t *testing.T) {
	// Channel bits 0b101 are outside the defined range.
	decoded := Decode(0b101)
	assert.Equal(t, ChannelPatched, decoded.Channel)
}

func TestChannelStrings(t *testing.T) {
	assert.Equal(t, "P", ChannelProduction.String())
	assert.Equal(t, "RC", ChannelReleaseCandidate.String())
	assert.Equal(t, "b", ChannelBeta.String())
	assert.Equal(t, "a", ChannelAlpha.String())
	assert.Equal(t, "*", ChannelPatched.String())
}

func TestTagAndParse(t *testing.T) {
	v := New("1.2.3", ChannelReleaseCandidate)
	assert.Equal(t, "1.2.3RC", v.Tag())

	parsed, ok := Parse("1.2.3RC")
	require.True(t, ok)
	assert.Equal(t, v, parsed)

	_, ok = Parse("1.2.3")
	assert.False(t, ok, "missing channel suffix must not parse")

	_, ok = Parse("1.2.3X")
	assert.False(t, ok, "unknown channel suffix must not parse")

	patched, ok := Parse("0.9.1*")
	require.True(t, ok)
	assert.Equal(t, ChannelPatched, patched.Channel)
}

func TestCompatibility(t *testing.T) {
	tests := []struct {
		name     string
		current  Version
		incoming Version
		want     bool
	}{
		{"alpha with alpha", New("0.1.0", ChannelAlpha), New("9.9.9", ChannelAlpha), true},
		{"alpha with beta", New("0.1.0", ChannelAlpha), New("2.0.0", ChannelBeta), true},
		{"beta with rc same major", New("1.4.0", ChannelBeta), New("1.0.0", ChannelReleaseCandidate), true},
		{"beta with rc different major", New("1.4.0", ChannelBeta), New("2.0.0", ChannelReleaseCandidate), false},
		{"rc with rc same major", New("3.1.0", ChannelReleaseCandidate), New("3.7.2", ChannelReleaseCandidate), true},
		{"production same major minor", New("2.3.1", ChannelProduction), New("2.3.9", ChannelProduction), true},
		{"production different minor", New("2.3.1", ChannelProduction), New("2.4.0", ChannelProduction), false},
		{"production with rc same major minor", New("2.3.1", ChannelProduction), New("2.3.0", ChannelReleaseCandidate), true},
		{"production with beta", New("2.3.1", ChannelProduction), New("2.3.1", ChannelBeta), false},
		{"patched bypasses everything", New("0.0.1", ChannelPatched), New("9.9.9", ChannelProduction), true},
		{"patched incoming bypasses", New("1.0.0", ChannelProduction), New("9.9.9", ChannelPatched), true},
		{"unparsable number is incompatible", New("garbage", ChannelProduction), New("1.0.0", ChannelProduction), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.CompatibleWith(tt.incoming))
		})
	}
}

func TestSoftwareVersion(t *testing.T) {
	placeholder := Placeholder()
	assert.Equal(t, "0.0.0", placeholder.Application.Number.String())
	assert.Equal(t, ChannelAlpha, placeholder.Application.Channel)
	assert.Equal(t, ChannelAlpha, placeholder.Library.Channel)

	a := NewSoftware("1.2.0", "0.9.0", ChannelProduction)
	b := NewSoftware("1.2.5", "0.9.3", ChannelProduction)
	assert.True(t, a.CompatibleWith(b))

	c := NewSoftware("1.3.0", "0.9.0", ChannelProduction)
	assert.False(t, a.CompatibleWith(c), "application minor mismatch must fail")
}

func TestSoftwareVersionBinaryRoundTrip(t *testing.T) {
	original := NewSoftware("1.2.3", "0.4.1", ChannelReleaseCandidate)

	data, err := original.MarshalBinary()
	require.NoError(t, err)

	var decoded SoftwareVersion
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, original, decoded)

	var bad SoftwareVersion
	assert.Error(t, bad.UnmarshalBinary([]byte("not msgpack at all")))
}

func TestPatchedBetweenChannels(t *testing.T) {
	// Both orderings of a patched pairing succeed regardless of numbers.
	patched := New("0.0.0", ChannelPatched)
	for _, other := range []Version{
		New("1.0.0", ChannelProduction),
		New("garbage", ChannelAlpha),
	} {
		assert.True(t, patched.CompatibleWith(other))
		assert.True(t, other.CompatibleWith(patched))
	}
}
