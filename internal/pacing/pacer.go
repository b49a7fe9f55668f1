// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package pacing spaces out probe datagrams with a token bucket.
package pacing

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer releases one token per datagram. A rate of zero or less disables
// pacing.
type Pacer struct {
	limiter *rate.Limiter
}

// New creates a Pacer that allows perSecond datagrams per second with bursts
// of up to burst datagrams.
func New(perSecond float64, burst int) *Pacer {
	return &Pacer{limiter: rate.NewLimiter(limit(perSecond), max(burst, 1))}
}

func limit(perSecond float64) rate.Limit {
	if perSecond <= 0 {
		return rate.Inf
	}

	return rate.Limit(perSecond)
}

// Wait blocks until the next datagram may be sent or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
