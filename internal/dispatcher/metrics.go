package dispatcher

import (
	"sort"
	"time"

	"github.com/dshills/keyline/internal/command"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	commands map[string]*CommandMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalUnknown    uint64
	totalDuration   time.Duration
}

// CommandMetrics holds statistics for one identifier.
type CommandMetrics struct {
	ID            string
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastCode      int
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{commands: make(map[string]*CommandMetrics)}
}

// Record adds one dispatch of id.
func (m *Metrics) Record(id string, elapsed time.Duration, res command.Result) {
	m.totalDispatches++
	m.totalDuration += elapsed
	if res.IsError() {
		m.totalErrors++
	}

	cm := m.commands[id]
	if cm == nil {
		cm = &CommandMetrics{ID: id}
		m.commands[id] = cm
	}
	cm.DispatchCount++
	cm.TotalDuration += elapsed
	cm.MaxDuration = max(cm.MaxDuration, elapsed)
	cm.LastCode = res.Code
	if res.IsError() {
		cm.ErrorCount++
	}
}

// RecordUnknown counts a line whose identifier was not registered.
func (m *Metrics) RecordUnknown() {
	m.totalUnknown++
}

// TotalDispatches returns the number of dispatched lines.
func (m *Metrics) TotalDispatches() uint64 {
	return m.totalDispatches
}

// TotalErrors returns the number of negative results.
func (m *Metrics) TotalErrors() uint64 {
	return m.totalErrors
}

// TotalUnknown returns the number of lines naming no registered command.
func (m *Metrics) TotalUnknown() uint64 {
	return m.totalUnknown
}

// AverageDuration returns the mean handler run time.
func (m *Metrics) AverageDuration() time.Duration {
	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// CommandStats returns a copy of the statistics for id, or nil.
func (m *Metrics) CommandStats(id string) *CommandMetrics {
	cm := m.commands[id]
	if cm == nil {
		return nil
	}
	c := *cm
	return &c
}

// TopCommands returns the n most dispatched identifiers.
func (m *Metrics) TopCommands(n int) []CommandMetrics {
	out := make([]CommandMetrics, 0, len(m.commands))
	for _, cm := range m.commands {
		out = append(out, *cm)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].ID < out[j].ID
	})
	return out[:min(n, len(out))]
}
