// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rfc8888

import (
	"time"

	"github.com/pion/ecn"
	"github.com/pion/ecn/internal/ntp"
	"github.com/pion/rtcp"
)

// Acknowledgement is the fate of one RTP packet as told by a feedback report.
type Acknowledgement struct {
	SequenceNumber uint16
	Arrived        bool
	// Arrival is zero when the packet did not arrive or the reporter could
	// not tell its arrival time.
	Arrival   time.Time
	Codepoint ecn.Codepoint
}

// Acknowledgements converts a received report into acknowledgements per
// media SSRC. now resolves the report's short timestamp and should be close
// to the time the report was received.
func Acknowledgements(now time.Time, report *rtcp.CCFeedbackReport) map[uint32][]Acknowledgement {
	if report == nil {
		return nil
	}

	reference := ntp.ToTime32(report.ReportTimestamp, now)
	acks := make(map[uint32][]Acknowledgement, len(report.ReportBlocks))
	for _, rb := range report.ReportBlocks {
		acks[rb.MediaSSRC] = convertMetricBlocks(reference, rb.BeginSequence, rb.MetricBlocks)
	}

	return acks
}

func convertMetricBlocks(reference time.Time, begin uint16, blocks []rtcp.CCFeedbackMetricBlock) []Acknowledgement {
	acks := make([]Acknowledgement, len(blocks))
	for i, mb := range blocks {
		acks[i].SequenceNumber = begin + uint16(i) //nolint:gosec
		if !mb.Received {
			continue
		}

		acks[i].Arrived = true
		acks[i].Codepoint = ecn.CodepointFromRTCP(mb.ECN)
		if mb.ArrivalTimeOffset != atoUnavailable {
			delta := time.Duration(mb.ArrivalTimeOffset) * time.Second / 1024
			acks[i].Arrival = reference.Add(-delta)
		}
	}

	return acks
}
