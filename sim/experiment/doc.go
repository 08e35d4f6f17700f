// Package experiment runs independent replications of a call-center
// scenario and reduces them into mean and population standard deviation
// estimates.
//
// Replication i of a scenario is seeded with base seed + i, owns its own
// sim.Simulator, and shares nothing with other replications, so replications
// may run on several workers without changing the results.
package experiment
