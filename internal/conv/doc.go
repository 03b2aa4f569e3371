// Package conv provides small, reflection-based helpers to convert between
// arbitrary Go values. Convert coerces generic tool arguments (maps decoded
// from JSON) into typed action inputs and typed results back into whatever
// the caller asked for.
package conv
