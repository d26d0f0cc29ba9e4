// Package iterutils provides utilities for working with iter package.
package iterutils

import "iter"

// IterFirst returns the first value of the given sequence.
func IterFirst[V any](seq iter.Seq[V]) V {
	var v V
	for v = range seq {
		break
	}
	return v
}
