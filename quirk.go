// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import (
	"bytes"
	"os"
	"sync"
)

// Quirk names a host environment whose socket layer deviates from the
// native kernel behaviour.
type Quirk int

const (
	// QuirkNone is a regular host.
	QuirkNone Quirk = iota
	// QuirkWSL is the Windows Subsystem for Linux, which rejects IPV6_TCLASS
	// and friends with errors that must not be fatal.
	QuirkWSL
)

func (q Quirk) String() string {
	if q == QuirkWSL {
		return "WSL"
	}

	return "none"
}

const osReleasePath = "/proc/sys/kernel/osrelease"

var wslEnvMarkers = []string{"WSL_DISTRO_NAME", "WSL_INTEROP"} //nolint:gochecknoglobals

type quirkDetector struct {
	readFile func(string) ([]byte, error)
	getenv   func(string) string

	once  sync.Once
	quirk Quirk
}

func newQuirkDetector() *quirkDetector {
	return &quirkDetector{readFile: os.ReadFile, getenv: os.Getenv}
}

// Quirk classifies the host on first use and returns the cached answer on
// every later call.
func (d *quirkDetector) Quirk() Quirk {
	d.once.Do(func() {
		d.quirk = d.detect()
	})

	return d.quirk
}

func (d *quirkDetector) detect() Quirk {
	release, err := d.readFile(osReleasePath)
	if err == nil {
		if bytes.Contains(release, []byte("Microsoft")) {
			return QuirkWSL
		}

		return QuirkNone
	}

	for _, name := range wslEnvMarkers {
		if d.getenv(name) != "" {
			return QuirkWSL
		}
	}

	return QuirkNone
}

var hostQuirks = newQuirkDetector() //nolint:gochecknoglobals

// HostQuirk returns the process wide host classification.
func HostQuirk() Quirk {
	return hostQuirks.Quirk()
}
