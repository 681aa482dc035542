// Package chain provides fluent composition over res.Result. A Chain owns
// its result; each step consumes it and produces a fresh chain, so the
// single-use discipline of the underlying result carries through.
//
// Highlights:
// - Start/FromValue: open a chain
// - Then/Map/MapErr: same-type steps as methods
// - Then/Map/Try (free functions): type-changing steps
// - Ensure: side effect on success
// - And/Or: combine computed chains
// - Finally: collapse into a plain value
// - Result: hand the underlying result back
package chain
