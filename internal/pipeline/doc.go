// Package pipeline loads and builds pattern files on a worker pool and hands
// the outcomes to a visit callback in input order.
//
// It never imports writers, output, cli or app; presentation stays with the
// caller.
package pipeline
