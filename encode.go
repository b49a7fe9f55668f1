// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

// Encoder builds control data that sets the traffic class of one outgoing
// datagram. It holds no mutable state; the buffers it returns do, and each
// belongs to one send call at a time.
type Encoder struct {
	policy Policy
}

// NewEncoder returns an Encoder laid out for the configured policy.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Encoder{policy: cfg.policy}, nil
}

type cmsgLayout struct {
	level int32
	typ   int32
	width int
}

func (e *Encoder) layout(f Family) ([]cmsgLayout, error) {
	switch f {
	case FamilyIPv4:
		return []cmsgLayout{
			{level: LevelIP, typ: sendTypeIP, width: e.policy.PayloadWidth(FamilyIPv4)},
		}, nil
	case FamilyIPv6:
		hdrs := []cmsgLayout{
			{level: LevelIPv6, typ: sendTypeIPv6, width: e.policy.PayloadWidth(FamilyIPv6)},
		}
		if e.policy.HeaderCount(FamilyIPv6) > 1 {
			hdrs = append(hdrs, cmsgLayout{level: LevelIP, typ: sendTypeIP, width: e.policy.PayloadWidth(FamilyIPv4)})
		}

		return hdrs, nil
	default:
		return nil, ErrInvalidAddressFamily
	}
}

// Space returns the number of bytes Marshal needs for family f.
func (e *Encoder) Space(f Family) (int, error) {
	hdrs, err := e.layout(f)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, h := range hdrs {
		n += cmsgSpace(h.width)
	}

	return n, nil
}

// Marshal writes the control data for tc into buf and returns buf truncated
// to the written length. A nil buf is allocated. The same buffer may be
// marshaled into again for the next datagram.
func (e *Encoder) Marshal(buf []byte, f Family, tc TrafficClass) ([]byte, error) {
	hdrs, err := e.layout(f)
	if err != nil {
		return nil, err
	}

	space := 0
	for _, h := range hdrs {
		space += cmsgSpace(h.width)
	}
	switch {
	case buf == nil:
		buf = make([]byte, space)
	case len(buf) < space:
		return nil, ErrBufferTooSmall
	}
	buf = buf[:space]

	off := 0
	for _, h := range hdrs {
		off += putCmsg(buf[off:], h, tc)
	}

	return buf, nil
}

var defaultEncoder = &Encoder{policy: DefaultPolicy()} //nolint:gochecknoglobals

// ControlMessageSpace returns the buffer size MarshalControlMessage needs.
func ControlMessageSpace(f Family) (int, error) {
	return defaultEncoder.Space(f)
}

// MarshalControlMessage builds control data for tc with the platform layout.
func MarshalControlMessage(buf []byte, f Family, tc TrafficClass) ([]byte, error) {
	return defaultEncoder.Marshal(buf, f, tc)
}
