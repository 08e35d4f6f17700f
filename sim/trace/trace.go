package trace

// TraceLevel controls the verbosity of customer tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelCustomers captures one record per departed customer.
	TraceLevelCustomers TraceLevel = "customers"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelCustomers: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether the level records anything.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelCustomers
}

// SimulationTrace collects customer records during one replication.
type SimulationTrace struct {
	Level     TraceLevel       `json:"level" yaml:"level"`
	Customers []CustomerRecord `json:"customers" yaml:"customers"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:     level,
		Customers: make([]CustomerRecord, 0),
	}
}

// RecordCustomer appends a customer record.
func (st *SimulationTrace) RecordCustomer(record CustomerRecord) {
	st.Customers = append(st.Customers, record)
}
