// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim/trace"
)

// TrialResult is the outcome of one trial.
type TrialResult struct {
	Trial               int
	Seed                int64
	Policy              string
	FileRequests        int   // arrival steps executed
	Serviced            int   // track requests serviced, drain included
	TotalHeadMovement   int   // sum of seek distances
	AverageHeadMovement int   // TotalHeadMovement / Serviced, truncated
	ServiceOrder        []int // tracks in the order they were serviced
}

// Simulator drives one trial: repeated arrival-then-service steps followed
// by a drain of whatever is still pending. The head starts at track 0.
type Simulator struct {
	Policy       Policy
	Workload     Workload
	Requests     int // file requests to simulate
	LoopBound    LoopBound
	Trace        *trace.SimulationTrace // nil disables recording
	CurrentTrack int
	StepCount    int
	Result       TrialResult
}

// NewSimulator wires a policy and workload into a fresh trial.
// All accumulators start at zero.
func NewSimulator(policy Policy, workload Workload, requests int, bound LoopBound) *Simulator {
	return &Simulator{
		Policy:    policy,
		Workload:  workload,
		Requests:  requests,
		LoopBound: bound,
		Result: TrialResult{
			Policy:       policy.Name(),
			ServiceOrder: make([]int, 0),
		},
	}
}

// Run executes the arrival loop and the drain, and returns the trial result.
func (sim *Simulator) Run() TrialResult {
	for sim.LoopBound.Continue(sim.StepCount, sim.Requests) {
		sim.Step()
	}
	sim.Drain()

	if sim.Result.Serviced > 0 {
		sim.Result.AverageHeadMovement = sim.Result.TotalHeadMovement / sim.Result.Serviced
	} else {
		logrus.Warnf("[trial %d] no requests serviced; reporting average 0", sim.Result.Trial)
	}
	logrus.Infof("[trial %d] %s serviced %d requests, head movement %d, average %d",
		sim.Result.Trial, sim.Result.Policy, sim.Result.Serviced, sim.Result.TotalHeadMovement, sim.Result.AverageHeadMovement)
	return sim.Result
}

// Step inserts the next batch of arrivals and services exactly one request.
// A scripted workload that has run dry can leave the queue empty, in which
// case nothing is serviced.
func (sim *Simulator) Step() {
	arrivals := sim.Workload.NextArrivals()
	for _, track := range arrivals {
		sim.Policy.Insert(track)
	}
	sim.StepCount++
	sim.Result.FileRequests = sim.StepCount
	if sim.Policy.Len() == 0 {
		logrus.Debugf("[trial %d step %d] nothing pending", sim.Result.Trial, sim.StepCount)
		return
	}
	sim.service(trace.PhaseArrival)
}

// Drain services every pending request until the queue is empty.
func (sim *Simulator) Drain() {
	for sim.Policy.Len() > 0 {
		sim.service(trace.PhaseDrain)
	}
}

func (sim *Simulator) service(phase trace.Phase) {
	from := sim.CurrentTrack
	to := sim.Policy.RemoveNext(from)
	seek := SeekDistance(from, to)

	sim.Result.TotalHeadMovement += seek
	sim.Result.Serviced++
	sim.Result.ServiceOrder = append(sim.Result.ServiceOrder, to)
	sim.CurrentTrack = to

	if sim.Trace.Enabled() {
		sim.Trace.RecordService(trace.ServiceRecord{
			Trial:   sim.Result.Trial,
			Step:    sim.StepCount,
			Phase:   phase,
			Policy:  sim.Result.Policy,
			From:    from,
			To:      to,
			Seek:    seek,
			Pending: sim.Policy.Len(),
		})
	}
	logrus.Debugf("[trial %d step %d] %s %d -> %d (seek %d, pending %d)",
		sim.Result.Trial, sim.StepCount, phase, from, to, seek, sim.Policy.Len())
}
