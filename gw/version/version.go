// Package version models semantic-version-like identifiers tagged with a
// release channel, a channel compatibility matrix, and a compact 16-bit
// encoding for version exchange between peers.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/haywardlabs/groundwork/gw/stringy"
)

// Channel is a release maturity tag governing compatibility rules.
type Channel uint8

const (
	// ChannelProduction is a production release.
	ChannelProduction Channel = iota
	// ChannelReleaseCandidate is a release candidate.
	ChannelReleaseCandidate
	// ChannelBeta is a beta release.
	ChannelBeta
	// ChannelAlpha is an alpha release.
	ChannelAlpha
	// ChannelPatched marks an emergency hotfix; it bypasses every
	// compatibility check.
	ChannelPatched
)

func (c Channel) String() string {
	switch c {
	case ChannelProduction:
		return "P"
	case ChannelReleaseCandidate:
		return "RC"
	case ChannelBeta:
		return "b"
	case ChannelAlpha:
		return "a"
	case ChannelPatched:
		return "*"
	}
	return "*"
}

var (
	numberColor  = color.New(color.FgGreen, color.Bold)
	channelColor = color.New(color.FgRed, color.Bold)
)

// Version is a "major.minor.patch" number tagged with a release channel.
// Malformed numbers are representable; comparison and encoding fail soft on
// them instead of panicking.
type Version struct {
	Number  stringy.Stringy
	Channel Channel
}

// New creates a Version from a number string and channel.
func New(number string, channel Channel) Version {
	return Version{Number: stringy.From(number), Channel: channel}
}

// Tag returns the uncolored "numberchannel" form, e.g. "1.2.3RC".
func (v Version) Tag() string {
	return v.Number.String() + v.Channel.String()
}

// String renders the version for terminals: the number in bold green, the
// channel in bold red.
func (v Version) String() string {
	return numberColor.Sprint(v.Number.String()) + channelColor.Sprint(v.Channel.String())
}

// Parse splits a tag like "1.2.3RC" into a Version. The number part is the
// leading run of digits and dots; the rest must be a known channel suffix.
func Parse(tag string) (Version, bool) {
	split := len(tag)
	for i, r := range tag {
		if (r < '0' || r > '9') && r != '.' {
			split = i
			break
		}
	}
	if split == len(tag) {
		return Version{}, false
	}

	var channel Channel
	switch tag[split:] {
	case "P":
		channel = ChannelProduction
	case "RC":
		channel = ChannelReleaseCandidate
	case "b":
		channel = ChannelBeta
	case "a":
		channel = ChannelAlpha
	case "*":
		channel = ChannelPatched
	default:
		return Version{}, false
	}
	return New(tag[:split], channel), true
}

// Encode packs the version into a uint16: channel in the low 3 bits, then
// major (5 bits), minor (4 bits) and patch (4 bits). Components beyond the
// bit widths are silently truncated. An unparsable number encodes to 0.
func (v Version) Encode() uint16 {
	major, minor, patch, ok := parseParts(v.Number.String())
	if !ok {
		// Deliberate fallback: malformed numbers encode to zero rather
		// than failing.
		return 0
	}

	return (uint16(v.Channel) & 0b111) |
		((uint16(major) & 0b11111) << 3) |
		((uint16(minor) & 0b1111) << 8) |
		((uint16(patch) & 0b1111) << 12)
}

// Decode unpacks a uint16 produced by Encode. Channel bits outside the
// known range decode as Patched.
func Decode(encoded uint16) Version {
	channelBits := encoded & 0b111
	major := (encoded >> 3) & 0b11111
	minor := (encoded >> 8) & 0b1111
	patch := (encoded >> 12) & 0b1111

	channel := ChannelPatched
	if channelBits <= uint16(ChannelPatched) {
		channel = Channel(channelBits)
	}

	return New(fmt.Sprintf("%d.%d.%d", major, minor, patch), channel)
}

// CompatibleWith reports whether an incoming version is compatible with the
// current one:
//
//   - Patched on either side bypasses every check.
//   - Alpha/Alpha and Alpha/Beta pairs are always compatible.
//   - Beta/ReleaseCandidate and ReleaseCandidate pairs require equal major.
//   - Production with ReleaseCandidate or Production requires equal major
//     and minor.
//   - Every other pairing is incompatible.
//
// An unparsable number in a pairing that needs its components yields false.
func (v Version) CompatibleWith(incoming Version) bool {
	if v.Channel == ChannelPatched || incoming.Channel == ChannelPatched {
		return true
	}

	switch {
	case incoming.Channel == ChannelAlpha && v.Channel == ChannelAlpha:
		return true
	case (incoming.Channel == ChannelBeta && v.Channel == ChannelBeta) ||
		(incoming.Channel == ChannelBeta && v.Channel == ChannelAlpha) ||
		(incoming.Channel == ChannelAlpha && v.Channel == ChannelBeta):
		return true
	case (incoming.Channel == ChannelReleaseCandidate && v.Channel == ChannelReleaseCandidate) ||
		(incoming.Channel == ChannelReleaseCandidate && v.Channel == ChannelBeta) ||
		(incoming.Channel == ChannelBeta && v.Channel == ChannelReleaseCandidate):
		inMajor, _, _, inOK := parseParts(incoming.Number.String())
		curMajor, _, _, curOK := parseParts(v.Number.String())
		return inOK && curOK && inMajor == curMajor
	case (incoming.Channel == ChannelProduction && v.Channel == ChannelReleaseCandidate) ||
		(incoming.Channel == ChannelReleaseCandidate && v.Channel == ChannelProduction) ||
		(incoming.Channel == ChannelProduction && v.Channel == ChannelProduction):
		inMajor, inMinor, _, inOK := parseParts(incoming.Number.String())
		curMajor, curMinor, _, curOK := parseParts(v.Number.String())
		return inOK && curOK && inMajor == curMajor && inMinor == curMinor
	}
	return false
}

// parseParts splits a version number into exactly three non-negative
// integer components.
func parseParts(number string) (major, minor, patch uint32, ok bool) {
	parts := strings.Split(number, ".")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	values := make([]uint32, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		values[i] = uint32(n)
	}
	return values[0], values[1], values[2], true
}
