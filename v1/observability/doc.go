// Package observability defines the operation-level instrumentation contract
// shared by the client packages in this module.
//
// Clients report each completed remote operation to an [Observer] as an
// [OperationContext]. What happens with those events is up to the
// implementation: the metrics package records Prometheus counters and
// histograms, tests collect them in memory, and [NopObserver] drops them.
//
// Attaching an observer:
//
//	client = client.WithObserver(myObserver)
//
// Observers are optional everywhere; instrumented clients treat a nil
// observer as NopObserver.
package observability
