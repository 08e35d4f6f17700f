package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalCustomers  int     `json:"total_customers" yaml:"total_customers"`
	QueuedCount     int     `json:"queued_count" yaml:"queued_count"`
	ImmediateCount  int     `json:"immediate_count" yaml:"immediate_count"`
	MeanWait        float64 `json:"mean_wait" yaml:"mean_wait"`
	MaxWait         float64 `json:"max_wait" yaml:"max_wait"`
	MeanServiceTime float64 `json:"mean_service_time" yaml:"mean_service_time"`
	MaxQueueDepth   int     `json:"max_queue_depth" yaml:"max_queue_depth"`
	LastDeparture   float64 `json:"last_departure" yaml:"last_departure"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil || len(st.Customers) == 0 {
		return summary
	}

	totalWait, totalService := 0.0, 0.0
	for _, r := range st.Customers {
		summary.TotalCustomers++
		if r.Queued {
			summary.QueuedCount++
		} else {
			summary.ImmediateCount++
		}
		totalWait += r.Wait
		totalService += r.ServiceTime()
		summary.MaxWait = max(summary.MaxWait, r.Wait)
		summary.MaxQueueDepth = max(summary.MaxQueueDepth, r.QueueDepth)
		summary.LastDeparture = max(summary.LastDeparture, r.ServiceEnd)
	}
	n := float64(summary.TotalCustomers)
	summary.MeanWait = totalWait / n
	summary.MeanServiceTime = totalService / n

	return summary
}
