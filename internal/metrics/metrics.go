// Package metrics tracks run counters exposed by the monitoring endpoint.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	DocumentsFetched   int64
	DocumentsProcessed int64
	ProcessingFailures int64
	DuplicatesFiltered int64
	FeedErrors         int64
	DigestsGenerated   int64
	DeliveriesSent     int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementDocumentsFetched(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DocumentsFetched += n
}

func (m *Metrics) IncrementDocumentsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DocumentsProcessed++
}

func (m *Metrics) IncrementProcessingFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessingFailures++
}

func (m *Metrics) IncrementDuplicatesFiltered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered++
}

func (m *Metrics) IncrementFeedErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedErrors++
}

func (m *Metrics) IncrementDigestsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DigestsGenerated++
}

func (m *Metrics) IncrementDeliveriesSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeliveriesSent++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"documents_fetched":          m.DocumentsFetched,
		"documents_processed":        m.DocumentsProcessed,
		"processing_failures":        m.ProcessingFailures,
		"duplicates_filtered":        m.DuplicatesFiltered,
		"feed_errors":                m.FeedErrors,
		"digests_generated":          m.DigestsGenerated,
		"deliveries_sent":            m.DeliveriesSent,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
