// Package coerce implements deep numeric and string coercion over arbitrary
// value graphs, plus the scalar conversion rules shared with serialization.
//
// The two targets are deliberately asymmetric: the numeric target omits
// anything that does not parse to a finite number (NaN and infinities
// included), while the string target represents those same values as their
// literal text ("NaN", "Infinity"). Both walk the input with the shared
// walker, so emptied-out records and sequences can be pruned post-order.
package coerce
