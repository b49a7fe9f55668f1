// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !android && !darwin && !windows

package ecn

var defaultPolicy Policy = bsdPolicy{} //nolint:gochecknoglobals
