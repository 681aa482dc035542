// Package flow runs res.Result values through channel pipelines with
// controlled concurrency. The value type stays single-threaded; each result
// is owned by exactly one locomotive at a time, so pipelines stay race-free
// by ownership transfer, not by locking.
//
// Highlights:
// - ToChan/FromChan/First: move values in and out of channels
// - Run/Turnout: fan an engine across a pool of locomotive workers
// - Validate/Switch/Map/Tee: engine constructors
// - Finally: collapse a result channel into a value channel
// - WithWorkers/WithThrottle: context-carried pool size and rate limit
package flow
