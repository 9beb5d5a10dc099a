package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/trace"
)

var (
	// CLI flags for the experiment
	policyName   string  // Scheduling policy (fcfs, sstf)
	requests     int     // File requests per trial
	trials       int     // Number of trials averaged
	seeds        []int64 // Explicit per-trial seeds
	seed         int64   // Master seed used when --seeds is empty
	loopBound    string  // inclusive or exclusive arrival loop bound
	numTracks    int     // Tracks on the simulated disk
	minTracks    int     // Min track requests per file request
	maxTracks    int     // Max track requests per file request
	workloadFile string  // CSV workload to replay instead of random arrivals
	configPath   string  // Optional YAML config file
	logLevel     string  // Log verbosity level
	traceLevel   string  // Decision trace level
	traceOut     string  // File to write the decision trace to
	interactive  bool    // Prompt for requests and seeds on stdin
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sim",
	Short: "Disk-head scheduling simulator (FCFS, SSTF)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// runCmd executes one policy over all trials
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a disk scheduling experiment for one policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		if interactive {
			_, err := runInteractive(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		}

		tr, err := newTrace()
		if err != nil {
			return err
		}
		m, err := sim.RunExperiment(cfg, tr)
		if err != nil {
			return err
		}
		printMetrics(cmd.OutOrStdout(), m)
		return writeTrace(tr)
	},
}

// compareCmd runs every policy over the same seeds
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run FCFS and SSTF over the same seeds and compare head movement",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		tr, err := newTrace()
		if err != nil {
			return err
		}
		cfg.Seeds = cfg.TrialSeeds()

		var results []*sim.Metrics
		for _, name := range sim.PolicyNames() {
			pcfg := cfg
			pcfg.Policy = name
			m, err := sim.RunExperiment(pcfg, tr)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results = append(results, m)
		}
		printComparison(cmd.OutOrStdout(), results)
		return writeTrace(tr)
	},
}

// buildConfig layers defaults, the optional YAML file and explicitly set flags.
// Flags only override the file when the user set them (Changed).
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := sim.LoadConfig(configPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		logrus.Infof("Loaded config from %s", configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("policy") {
		cfg.Policy = policyName
	}
	if flags.Changed("requests") {
		cfg.Requests = requests
	}
	if flags.Changed("trials") {
		cfg.Trials = trials
	}
	if flags.Changed("seeds") {
		cfg.Seeds = seeds
		if !flags.Changed("trials") && configPath == "" {
			cfg.Trials = len(seeds)
		}
	}
	if flags.Changed("seed") {
		cfg.MasterSeed = seed
	}
	if flags.Changed("loop-bound") {
		cfg.LoopBound = sim.LoopBound(loopBound)
	}
	if flags.Changed("tracks") {
		cfg.NumTracks = numTracks
	}
	if flags.Changed("min-tracks-per-request") {
		cfg.MinTracks = minTracks
	}
	if flags.Changed("max-tracks-per-request") {
		cfg.MaxTracks = maxTracks
	}
	if flags.Changed("workload") {
		cfg.WorkloadFile = workloadFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logrus.Debugf("Effective config: %+v", cfg)
	return cfg, nil
}

func newTrace() (*trace.SimulationTrace, error) {
	if !trace.IsValidTraceLevel(traceLevel) {
		return nil, fmt.Errorf("unknown trace level %q", traceLevel)
	}
	level := trace.TraceLevel(traceLevel)
	if level == "" || level == trace.TraceLevelNone {
		if traceOut == "" {
			return nil, nil
		}
		level = trace.TraceLevelServices
	}
	return trace.NewSimulationTrace(trace.TraceConfig{Level: level}), nil
}

func writeTrace(tr *trace.SimulationTrace) error {
	if !tr.Enabled() {
		return nil
	}
	s := trace.Summarize(tr)
	logrus.Infof("Trace: %d services (%d arrival, %d drain), mean seek %.2f, max seek %d, max pending %d",
		s.TotalServices, s.ArrivalCount, s.DrainCount, s.MeanSeek, s.MaxSeek, s.MaxPending)
	if traceOut == "" {
		return nil
	}
	f, err := os.Create(traceOut)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer f.Close()
	return tr.WriteYAML(f)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func addExperimentFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&requests, "requests", 100, "Number of file requests per trial")
	cmd.Flags().IntVar(&trials, "trials", sim.DefaultTrials, "Number of trials to average")
	cmd.Flags().Int64SliceVar(&seeds, "seeds", nil, "Comma-separated per-trial seeds (defaults to seeds derived from --seed)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Master seed used to derive per-trial seeds")
	cmd.Flags().StringVar(&loopBound, "loop-bound", string(sim.LoopBoundInclusive), "Arrival loop bound: inclusive (total+1 steps) or exclusive")
	cmd.Flags().IntVar(&numTracks, "tracks", sim.NumTracks, "Number of tracks on the disk")
	cmd.Flags().IntVar(&minTracks, "min-tracks-per-request", sim.MinTracksPerFile, "Minimum track requests per file request")
	cmd.Flags().IntVar(&maxTracks, "max-tracks-per-request", sim.MaxTracksPerFile, "Maximum track requests per file request")
	cmd.Flags().StringVar(&workloadFile, "workload", "", "CSV workload (file_request,track) to replay")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Trace verbosity level (none, services)")
	cmd.Flags().StringVar(&traceOut, "trace-out", "", "Write the service trace as YAML to this file")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addExperimentFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFCFS, "Scheduling policy (fcfs, sstf)")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for the request count and per-trial seeds on stdin")

	addExperimentFlags(compareCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
