package metrics

import "time"

// RecordTokenRequest records the outcome of a token request.
func RecordTokenRequest(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	AuthTokenRequests.WithLabelValues(result).Inc()
}

// UpdateArticlesTotal updates the stored-article gauge. Callers refresh
// it periodically from the repository count.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query (e.g. "list_articles").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
