// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ecn reads and writes the ECN bits of the IP traffic class octet on
// UDP sockets.
//
// A socket is first prepared with Prepare so that the kernel attaches the
// received IPv4 TOS or IPv6 Traffic Class to every datagram. The control data
// of each datagram is then reduced to a single Result by a Decoder, which
// copes with the different encodings kernels use. Outgoing datagrams carry a
// per-packet traffic class through control data built by an Encoder, or a
// socket wide default set with SetTrafficClass.
package ecn

import "github.com/pion/logging"

type config struct {
	loggerFactory logging.LoggerFactory
	policy        Policy
}

// Option configures a Decoder, Encoder or Conn.
type Option func(*config) error

// WithLoggerFactory sets the logger factory used for diagnostics.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) Option {
	return func(c *config) error {
		c.loggerFactory = loggerFactory

		return nil
	}
}

// WithPolicy overrides the operating system policy.
func WithPolicy(p Policy) Option {
	return func(c *config) error {
		c.policy = p

		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		loggerFactory: logging.NewDefaultLoggerFactory(),
		policy:        DefaultPolicy(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
