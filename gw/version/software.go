package version

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// SoftwareVersion pairs an application version with the version of the
// shared library it was built against.
type SoftwareVersion struct {
	Application Version
	Library     Version
}

// NewSoftware builds a SoftwareVersion with both components on the same
// channel.
func NewSoftware(appNumber, libNumber string, channel Channel) SoftwareVersion {
	return SoftwareVersion{
		Application: New(appNumber, channel),
		Library:     New(libNumber, channel),
	}
}

// Placeholder returns the zero version "0.0.0" on the alpha channel for both
// components, useful before a real version has been negotiated.
func Placeholder() SoftwareVersion {
	return NewSoftware("0.0.0", "0.0.0", ChannelAlpha)
}

// CompatibleWith reports component-wise compatibility: both the application
// and library versions must be compatible with their counterparts.
func (s SoftwareVersion) CompatibleWith(incoming SoftwareVersion) bool {
	return s.Application.CompatibleWith(incoming.Application) &&
		s.Library.CompatibleWith(incoming.Library)
}

func (s SoftwareVersion) String() string {
	return fmt.Sprintf("Application Version: %s, Library Version: %s",
		s.Application.String(), s.Library.String())
}

type wireVersion struct {
	Number  string `msgpack:"number"`
	Channel uint8  `msgpack:"channel"`
}

type wireSoftware struct {
	Application wireVersion `msgpack:"application"`
	Library     wireVersion `msgpack:"library"`
}

// MarshalBinary encodes the pair as msgpack for version exchange.
func (s SoftwareVersion) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(wireSoftware{
		Application: wireVersion{Number: s.Application.Number.String(), Channel: uint8(s.Application.Channel)},
		Library:     wireVersion{Number: s.Library.Number.String(), Channel: uint8(s.Library.Channel)},
	})
}

// UnmarshalBinary decodes a msgpack payload produced by MarshalBinary.
// Channel values outside the known range decode as Patched.
func (s *SoftwareVersion) UnmarshalBinary(data []byte) error {
	var wire wireSoftware
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode software version: %w", err)
	}
	s.Application = New(wire.Application.Number, clampChannel(wire.Application.Channel))
	s.Library = New(wire.Library.Number, clampChannel(wire.Library.Channel))
	return nil
}

func clampChannel(raw uint8) Channel {
	if raw > uint8(ChannelPatched) {
		return ChannelPatched
	}
	return Channel(raw)
}
