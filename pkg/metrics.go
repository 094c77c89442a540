// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	toolCallsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mcp",
		Subsystem: "tool",
		Name:      "calls_total",
		Help:      "Number of tool calls by tool and result.",
	}, []string{"tool", "result"})
	sessionsCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mcp",
		Subsystem: "session",
		Name:      "created_total",
		Help:      "Number of issued session ids.",
	})
	sessionsTerminatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mcp",
		Subsystem: "session",
		Name:      "terminated_total",
		Help:      "Number of terminated sessions.",
	})
	sessionsActiveGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mcp",
		Subsystem: "session",
		Name:      "active",
		Help:      "Number of live sessions.",
	})
)

func init() {
	prometheus.MustRegister(
		toolCallsCounter,
		sessionsCreatedCounter,
		sessionsTerminatedCounter,
		sessionsActiveGauge,
	)
}

const (
	ToolResultSuccess = "success"
	ToolResultError   = "error"
	ToolResultFailed  = "failed"
)

//counterfeiter:generate -o ../mocks/metrics.go --fake-name Metrics . Metrics
type Metrics interface {
	ToolCallsCounterInc(tool string, result string)
	SessionsCreatedCounterInc()
	SessionsTerminatedCounterInc()
	SessionsActiveSet(count int)
}

func NewMetrics() Metrics {
	return &metrics{}
}

type metrics struct{}

func (m *metrics) ToolCallsCounterInc(tool string, result string) {
	toolCallsCounter.With(prometheus.Labels{"tool": tool, "result": result}).Inc()
}

func (m *metrics) SessionsCreatedCounterInc() {
	sessionsCreatedCounter.Inc()
}

func (m *metrics) SessionsTerminatedCounterInc() {
	sessionsTerminatedCounter.Inc()
}

func (m *metrics) SessionsActiveSet(count int) {
	sessionsActiveGauge.Set(float64(count))
}
