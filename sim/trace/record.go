// Package trace provides per-customer recording for call-center replications.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// CustomerRecord captures the lifecycle of one departed customer.
// Times are in simulated minutes.
type CustomerRecord struct {
	CustomerID   int     `json:"customer_id" yaml:"customer_id"`
	ArrivalTime  float64 `json:"arrival_time" yaml:"arrival_time"`
	ServiceStart float64 `json:"service_start" yaml:"service_start"`
	ServiceEnd   float64 `json:"service_end" yaml:"service_end"`
	Wait         float64 `json:"wait" yaml:"wait"`
	Queued       bool    `json:"queued" yaml:"queued"`           // waited for an agent
	QueueDepth   int     `json:"queue_depth" yaml:"queue_depth"` // customers already waiting on arrival
}

// ServiceTime returns ServiceEnd - ServiceStart.
func (r CustomerRecord) ServiceTime() float64 {
	return r.ServiceEnd - r.ServiceStart
}
