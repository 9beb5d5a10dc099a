// Package trace provides per-service decision recording for disk scheduling runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Phase names the part of a trial a service decision happened in.
type Phase string

const (
	// PhaseArrival is a service made right after a batch of arrivals.
	PhaseArrival Phase = "arrival"
	// PhaseDrain is a service made while emptying the queue at the end of a trial.
	PhaseDrain Phase = "drain"
)

// ServiceRecord captures a single head movement chosen by a policy.
type ServiceRecord struct {
	Trial   int    `yaml:"trial"`
	Step    int    `yaml:"step"`
	Phase   Phase  `yaml:"phase"`
	Policy  string `yaml:"policy"`
	From    int    `yaml:"from"`
	To      int    `yaml:"to"`
	Seek    int    `yaml:"seek"`
	Pending int    `yaml:"pending"` // requests left in the queue after this service
}
