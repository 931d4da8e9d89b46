package quantum

import "sync"

// Metrics tracks what happened across estimation attempts.
type Metrics struct {
	mu            sync.RWMutex
	Attempts      int
	OracleErrors  int
	OddPeriods    int
	TrivialPairs  int
	Successes     int
	ExhaustedRuns int
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordAttempt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attempts++
}

func (m *Metrics) recordOracleError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OracleErrors++
}

func (m *Metrics) recordOddPeriod() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OddPeriods++
}

func (m *Metrics) recordTrivialPair() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TrivialPairs++
}

func (m *Metrics) recordSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes++
}

func (m *Metrics) recordExhausted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExhaustedRuns++
}

// Export returns a snapshot suitable for logging or dumping.
func (m *Metrics) Export() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"attempts":       m.Attempts,
		"oracle_errors":  m.OracleErrors,
		"odd_periods":    m.OddPeriods,
		"trivial_pairs":  m.TrivialPairs,
		"successes":      m.Successes,
		"exhausted_runs": m.ExhaustedRuns,
	}
}
