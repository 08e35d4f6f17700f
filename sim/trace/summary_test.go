package trace

import (
	"testing"
)

func TestSummarize_NilTrace_ReturnsZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalCustomers != 0 || summary.MeanWait != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarize_EmptyTrace_ReturnsZeroValues(t *testing.T) {
	summary := Summarize(NewSimulationTrace(TraceLevelCustomers))
	if summary.TotalCustomers != 0 || summary.MaxWait != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarize_MixedCustomers_ComputesStatistics(t *testing.T) {
	// GIVEN one immediate and one queued customer
	st := NewSimulationTrace(TraceLevelCustomers)
	st.RecordCustomer(CustomerRecord{CustomerID: 0, ArrivalTime: 0, ServiceStart: 0, ServiceEnd: 4, Wait: 0})
	st.RecordCustomer(CustomerRecord{CustomerID: 1, ArrivalTime: 1, ServiceStart: 4, ServiceEnd: 6, Wait: 3, Queued: true, QueueDepth: 2})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts, means and maxima reflect both records
	if summary.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %d, want 2", summary.TotalCustomers)
	}
	if summary.QueuedCount != 1 || summary.ImmediateCount != 1 {
		t.Errorf("queued/immediate = %d/%d, want 1/1", summary.QueuedCount, summary.ImmediateCount)
	}
	if summary.MeanWait != 1.5 {
		t.Errorf("MeanWait = %v, want 1.5", summary.MeanWait)
	}
	if summary.MaxWait != 3 {
		t.Errorf("MaxWait = %v, want 3", summary.MaxWait)
	}
	if summary.MeanServiceTime != 3 {
		t.Errorf("MeanServiceTime = %v, want 3", summary.MeanServiceTime)
	}
	if summary.MaxQueueDepth != 2 {
		t.Errorf("MaxQueueDepth = %d, want 2", summary.MaxQueueDepth)
	}
	if summary.LastDeparture != 6 {
		t.Errorf("LastDeparture = %v, want 6", summary.LastDeparture)
	}
}
