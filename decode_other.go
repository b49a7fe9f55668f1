// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !darwin && !freebsd

package ecn

// DecodeBytes cannot parse raw control data on this platform and always
// returns Invalid. Use Decode with pre-split messages instead.
func (d *Decoder) DecodeBytes(oob []byte) Result {
	if len(oob) > 0 {
		d.log.Debugf("dropping %d bytes of control data: %v", len(oob), ErrUnsupportedPlatform)
	}

	return Invalid
}

// Decode decodes a raw control buffer with a default Decoder.
func Decode(oob []byte) Result {
	return defaultDecoder.DecodeBytes(oob)
}
