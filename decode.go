// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import "github.com/pion/logging"

// ControlMessage is one entry of the control data received with a datagram.
type ControlMessage struct {
	Level int32
	Type  int32
	Data  []byte
}

// Decoder extracts the traffic class from received control data.
type Decoder struct {
	log logging.LeveledLogger
}

// NewDecoder returns a Decoder.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Decoder{log: cfg.loggerFactory.NewLogger("ecn")}, nil
}

func isTrafficClassMessage(level, typ int32) bool {
	switch level {
	case LevelIP:
		return typ == TypeIPTOS || typ == TypeIPRecvTOS
	case LevelIPv6:
		return typ == TypeIPv6TClass
	default:
		return false
	}
}

// Decode walks msgs in order and returns the traffic class of the last entry
// that could be resolved, or Invalid if none could.
func (d *Decoder) Decode(msgs []ControlMessage) Result {
	res := Invalid
	for _, m := range msgs {
		if !isTrafficClassMessage(m.Level, m.Type) {
			continue
		}
		if tc, ok := d.resolve(m); ok {
			res = NewResult(tc)
		}
	}

	return res
}

// resolve picks the octet out of a payload. Kernels send a single byte or a
// native int. When four or more bytes are present, byte 0 and byte 3 are the
// candidates for little and big endian ints, and a nonzero one wins over zero.
func (d *Decoder) resolve(m ControlMessage) (TrafficClass, bool) {
	b := m.Data
	switch {
	case len(b) == 0:
		d.log.Debugf("ignoring empty traffic class control message (level %d, type %d)", m.Level, m.Type)

		return 0, false
	case len(b) == 1:
		return TrafficClass(b[0]), true
	case len(b) < 4:
		d.log.Debugf("short traffic class control message of %d bytes, using first byte", len(b))

		return TrafficClass(b[0]), true
	}

	switch first, last := b[0], b[3]; {
	case first == last, last == 0:
		return TrafficClass(first), true
	case first == 0:
		return TrafficClass(last), true
	default:
		d.log.Warnf("cannot resolve traffic class from %02X %02X %02X %02X", b[0], b[1], b[2], b[3])

		return 0, false
	}
}

var defaultDecoder = &Decoder{log: logging.NewDefaultLoggerFactory().NewLogger("ecn")} //nolint:gochecknoglobals
