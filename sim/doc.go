// Package sim provides the disk-head scheduling simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - queue.go: RequestQueue, the arena-backed doubly-linked pending queue
//   - scheduler.go / sstf.go: the Policy interface and the FCFS and SSTF policies
//   - simulator.go: one trial (arrival-then-service steps, then drain)
//   - experiment.go: repeated independent trials and their aggregation
//
// # Architecture
//
// A Policy owns its RequestQueue and decides both where a new request goes
// and which one is serviced next. The Simulator only sees the Policy
// contract (Insert, RemoveNext, Len), so adding a policy means implementing
// that interface and registering its name in NewPolicy.
//
// Workloads produce the tracks arriving per file request: RandomWorkload
// draws 1..4 uniform tracks per step from a seeded source, ScriptedWorkload
// replays fixed batches (including CSV files).
//
// Decision traces live in sim/trace and are optional.
package sim
