// Package profile builds the parameter set of a linear profile HMM from a
// match-state emission table and a state-transition table.
//
// The model has one random (background) state R and, for each motif column
// k in 1..N, a match state Mk, an insert state Ik and a delete state Dk.
// Build validates the tables in a single pass and either returns an
// immutable ParameterSet or fails with one of UnknownStateError,
// StructuralError, MissingEmissionError or InvalidWeightError. No partial
// parameter set is ever returned.
//
// Weights are relative scores. Rows are not required to sum to 1.0 and are
// never normalized here; interpreting them is left to the decoder that
// consumes the ParameterSet.
//
// A ParameterSet is never mutated after Build returns, so any number of
// goroutines may read it without locking.
package profile
