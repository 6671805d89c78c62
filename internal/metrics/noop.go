package metrics

import "time"

// NoopMetricsProvider discards every measurement. Used where metrics are not
// under observation, tests mostly.
type NoopMetricsProvider struct{}

func NewNoopMetricsProvider() MetricsProvider {
	return &NoopMetricsProvider{}
}

func (NoopMetricsProvider) IncrementHTTPRequests(method, path, status string)         {}
func (NoopMetricsProvider) RecordHTTPRequestDuration(string, string, string, time.Duration) {
}
func (NoopMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {}
func (NoopMetricsProvider) RecordDatabaseQueryDuration(string, time.Duration)       {}
func (NoopMetricsProvider) IncrementCacheHits()                                     {}
func (NoopMetricsProvider) IncrementCacheMisses()                                   {}
func (NoopMetricsProvider) RecordCacheOperationDuration(string, time.Duration)      {}
func (NoopMetricsProvider) IncrementPostOperations(operation string, success bool)  {}
func (NoopMetricsProvider) SetServiceHealth(healthy bool)                           {}
