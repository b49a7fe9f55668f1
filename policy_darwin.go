// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

var defaultPolicy Policy = darwinPolicy{} //nolint:gochecknoglobals
