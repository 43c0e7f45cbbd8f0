// Package taskflow provides a small composable step runner: sequences of
// steps that stop at the first failure, and parallel fan-outs that join
// every failing step's error. The driver-restart supervisor (spec §4.12)
// is built on both: a Sequence for its close/probe/open/reload stages, and
// a Parallel for probing restart candidates concurrently.
//
//	seq := taskflow.NewSequence(taskflow.SequenceConfig{Name: "driver-restart"})
//	seq.AddFunc("close", closeDriver)
//	seq.AddFunc("open", openDriver)
//	err := seq.Run(ctx)
package taskflow
