// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

var (
	// ErrInvalidAddressFamily is returned when a socket is neither IPv4 nor
	// IPv6. It matches syscall.EAFNOSUPPORT with errors.Is.
	ErrInvalidAddressFamily error = &errnoError{msg: "ecn: address family not supported", errno: syscall.EAFNOSUPPORT}

	// ErrBufferTooSmall is returned when a caller supplied control buffer is
	// shorter than Space reports. It matches syscall.ERANGE with errors.Is.
	ErrBufferTooSmall error = &errnoError{msg: "ecn: control message buffer too small", errno: syscall.ERANGE}

	// ErrUnsupportedPlatform is returned by socket operations on platforms
	// without traffic class socket options.
	ErrUnsupportedPlatform = errors.New("ecn: platform does not support traffic class socket options")
)

// errnoError is a sentinel that also compares equal to a system error code,
// so bindings can map it without knowing about this package.
type errnoError struct {
	msg   string
	errno syscall.Errno
}

func (e *errnoError) Error() string {
	return e.msg
}

func (e *errnoError) Is(target error) bool {
	errno, ok := target.(syscall.Errno)

	return ok && errno == e.errno
}

// OptionError records a failed socket option change and the tier it produced.
type OptionError struct {
	Op     string
	Family Family
	Tier   Tier
	Err    error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("ecn: %s (%s, tier %d): %v", e.Op, e.Family, e.Tier, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// Errno extracts the system error code carried by err, if any.
func Errno(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	var sentinel *errnoError
	if errors.As(err, &sentinel) {
		return sentinel.errno, true
	}

	return 0, false
}

type multiError []error

func (me multiError) Error() string {
	var errstrings []string

	for _, err := range me {
		if err != nil {
			errstrings = append(errstrings, err.Error())
		}
	}

	if len(errstrings) == 0 {
		return "multiError must contain multiple error but is empty"
	}

	return strings.Join(errstrings, "\n")
}

func (me multiError) Is(err error) bool {
	for _, e := range me {
		if errors.Is(e, err) {
			return true
		}
		if me2, ok := e.(multiError); ok { //nolint:errorlint
			if me2.Is(err) {
				return true
			}
		}
	}

	return false
}

func flattenErrs(errs []error) error {
	errs2 := multiError{}
	for _, e := range errs {
		if e != nil {
			errs2 = append(errs2, e)
		}
	}
	if len(errs2) == 0 {
		return nil
	}

	return errs2
}
