// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacerSpacesDatagrams(t *testing.T) {
	p := New(50, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	for i := 0; i < 6; i++ {
		require.NoError(t, p.Wait(ctx))
	}
	// The first token is free, the other five take 20ms each.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestPacerUnlimited(t *testing.T) {
	p := New(0, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	for i := 0; i < 1000; i++ {
		require.NoError(t, p.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestPacerWaitCancelled(t *testing.T) {
	slow := New(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, slow.Wait(ctx))

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	assert.Error(t, slow.Wait(cancelled))
}
