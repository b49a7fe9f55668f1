// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rfc8888

import (
	"time"

	"github.com/pion/rtcp"
)

// RFC 8888 limits a report block to 16384 metric blocks.
const maxReportsPerReportBlock = 16384

const (
	atoUnavailable = 0x1FFF
	atoOverflow    = 0x1FFE
)

type packetReport struct {
	arrivalTime time.Time
	ecn         rtcp.ECN
}

// streamLog holds the packets of one SSRC that have not been acknowledged
// in a report yet.
type streamLog struct {
	ssrc                       uint32
	sequence                   unwrapper
	init                       bool
	nextSequenceNumberToReport int64
	lastSequenceNumberReceived int64
	log                        map[int64]*packetReport
}

func newStreamLog(ssrc uint32) *streamLog {
	return &streamLog{
		ssrc: ssrc,
		log:  map[int64]*packetReport{},
	}
}

func (l *streamLog) add(ts time.Time, sequenceNumber uint16, ecn rtcp.ECN) {
	seq := l.sequence.unwrap(sequenceNumber)
	if !l.init {
		l.init = true
		l.nextSequenceNumberToReport = seq
	}
	if seq < l.nextSequenceNumberToReport {
		// Already reported, or dropped from the window.
		return
	}
	l.log[seq] = &packetReport{arrivalTime: ts, ecn: ecn}
	if seq > l.lastSequenceNumberReceived {
		l.lastSequenceNumberReceived = seq
	}
}

// metricsAfter reports every sequence number from the first unreported one
// up to the highest received, at most maxReportBlocks of them. Packets are
// forgotten once reported, up to the first gap, so a late packet can still
// be acknowledged by the next report.
func (l *streamLog) metricsAfter(reference time.Time, maxReportBlocks int64) rtcp.CCFeedbackReportBlock {
	if len(l.log) == 0 {
		return rtcp.CCFeedbackReportBlock{
			MediaSSRC:     l.ssrc,
			BeginSequence: uint16(l.nextSequenceNumberToReport), //nolint:gosec
			MetricBlocks:  []rtcp.CCFeedbackMetricBlock{},
		}
	}

	if l.lastSequenceNumberReceived-l.nextSequenceNumberToReport+1 > maxReportBlocks {
		begin := l.lastSequenceNumberReceived - maxReportBlocks + 1
		for seq := range l.log {
			if seq < begin {
				delete(l.log, seq)
			}
		}
		l.nextSequenceNumberToReport = begin
	}

	begin := l.nextSequenceNumberToReport
	metricBlocks := make([]rtcp.CCFeedbackMetricBlock, 0, l.lastSequenceNumberReceived-begin+1)
	inOrder := true
	for seq := begin; seq <= l.lastSequenceNumberReceived; seq++ {
		report, received := l.log[seq]
		block := rtcp.CCFeedbackMetricBlock{Received: received}
		if received {
			block.ECN = report.ecn
			block.ArrivalTimeOffset = getArrivalTimeOffset(reference, report.arrivalTime)
		}
		metricBlocks = append(metricBlocks, block)

		if inOrder && received {
			delete(l.log, seq)
			l.nextSequenceNumberToReport++
		} else {
			inOrder = false
		}
	}

	return rtcp.CCFeedbackReportBlock{
		MediaSSRC:     l.ssrc,
		BeginSequence: uint16(begin), //nolint:gosec
		MetricBlocks:  metricBlocks,
	}
}

// getArrivalTimeOffset returns how long before base the packet arrived, in
// 1/1024 seconds.
func getArrivalTimeOffset(base time.Time, arrival time.Time) uint16 {
	if arrival.After(base) {
		return atoUnavailable
	}

	ato := base.Sub(arrival).Seconds() * 1024
	if ato >= atoOverflow {
		return atoOverflow
	}

	return uint16(ato)
}
