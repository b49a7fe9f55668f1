// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package rfc8888 turns the ECN codepoints of received RTP packets into RTP
// Control Protocol feedback as defined by RFC 8888, and reads such feedback
// back into per-packet acknowledgements.
package rfc8888

import (
	"slices"
	"sync"
	"time"

	"github.com/pion/ecn"
	"github.com/pion/ecn/internal/ntp"
	"github.com/pion/logging"
	"github.com/pion/rtcp"
)

const (
	reportHeaderSize      = 12
	reportBlockHeaderSize = 8
	metricBlockSize       = 2
)

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithSenderSSRC sets the SSRC the reports are sent from.
func WithSenderSSRC(ssrc uint32) RecorderOption {
	return func(r *Recorder) {
		r.ssrc = ssrc
	}
}

// WithLoggerFactory sets the logger factory of the Recorder.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) RecorderOption {
	return func(r *Recorder) {
		r.log = loggerFactory.NewLogger("rfc8888")
	}
}

// Recorder records the arrival time and ECN codepoint of incoming RTP
// packets and builds feedback reports from them. It is safe for concurrent
// use.
type Recorder struct {
	lock    sync.Mutex
	ssrc    uint32
	streams map[uint32]*streamLog
	log     logging.LeveledLogger
}

// NewRecorder creates a Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		streams: map[uint32]*streamLog{},
		log:     logging.NewDefaultLoggerFactory().NewLogger("rfc8888"),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// AddPacket records a packet of stream ssrc that arrived at ts.
func (r *Recorder) AddPacket(ts time.Time, ssrc uint32, seq uint16, codepoint rtcp.ECN) {
	r.lock.Lock()
	defer r.lock.Unlock()

	stream, ok := r.streams[ssrc]
	if !ok {
		stream = newStreamLog(ssrc)
		r.streams[ssrc] = stream
	}
	stream.add(ts, seq, codepoint)
}

// AddResult records a packet together with the decoded traffic class it
// arrived with. Packets without a valid traffic class count as Not-ECT.
func (r *Recorder) AddResult(ts time.Time, ssrc uint32, seq uint16, res ecn.Result) {
	r.AddPacket(ts, ssrc, seq, res.Codepoint().RTCP())
}

// BuildReport builds a report of everything not yet acknowledged that fits
// into maxSize bytes, splitting the space evenly between streams.
func (r *Recorder) BuildReport(now time.Time, maxSize int) *rtcp.CCFeedbackReport {
	r.lock.Lock()
	defer r.lock.Unlock()

	report := &rtcp.CCFeedbackReport{
		SenderSSRC:      r.ssrc,
		ReportBlocks:    make([]rtcp.CCFeedbackReportBlock, 0, len(r.streams)),
		ReportTimestamp: ntp.ToNTP32(now),
	}
	if len(r.streams) == 0 {
		return report
	}

	maxReportBlocks := (maxSize - reportHeaderSize - reportBlockHeaderSize*len(r.streams)) / metricBlockSize
	perStream := int64(min(maxReportBlocks/len(r.streams), maxReportsPerReportBlock))
	if perStream < 1 {
		r.log.Warnf("report size %d too small for %d streams", maxSize, len(r.streams))
		perStream = 1
	}

	ssrcs := make([]uint32, 0, len(r.streams))
	for ssrc := range r.streams {
		ssrcs = append(ssrcs, ssrc)
	}
	slices.Sort(ssrcs)

	for _, ssrc := range ssrcs {
		block := r.streams[ssrc].metricsAfter(now, perStream)
		report.ReportBlocks = append(report.ReportBlocks, block)
	}
	r.log.Tracef("built report for %d streams", len(ssrcs))

	return report
}
