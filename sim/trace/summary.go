package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalServices  int
	ArrivalCount   int
	DrainCount     int
	TotalSeek      int
	MeanSeek       float64
	MaxSeek        int
	ZeroSeekCount  int
	MaxPending     int
	PolicyServices map[string]int // policy name → number of services
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		PolicyServices: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalServices = len(st.Services)
	for _, r := range st.Services {
		switch r.Phase {
		case PhaseArrival:
			summary.ArrivalCount++
		case PhaseDrain:
			summary.DrainCount++
		}
		summary.PolicyServices[r.Policy]++
		summary.TotalSeek += r.Seek
		if r.Seek > summary.MaxSeek {
			summary.MaxSeek = r.Seek
		}
		if r.Seek == 0 {
			summary.ZeroSeekCount++
		}
		if r.Pending > summary.MaxPending {
			summary.MaxPending = r.Pending
		}
	}
	if summary.TotalServices > 0 {
		summary.MeanSeek = float64(summary.TotalSeek) / float64(summary.TotalServices)
	}

	return summary
}
