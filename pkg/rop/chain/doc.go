// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// A Chain carries a context.Context that is handed to every step. The chain
// itself never inspects the context; steps decide what to do with it.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then/Map/MapErr: steps that keep the value and failure types
// - Switch/MapTo/ThenTry: steps that change the value type
// - Or/OrElse: recover a failed chain (eager / lazy)
// - Ensure: run side effects without changing the result
// - While/RepeatUntil: loop a step over the value
// - Finally: collapse the chain into a final value via handlers
package chain
