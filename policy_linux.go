// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import "runtime"

// Android shares the linux kernel but not its WSL check.
var defaultPolicy Policy = linuxPolicy{ //nolint:gochecknoglobals
	checkQuirks: runtime.GOOS != "android",
	quirks:      hostQuirks,
}
