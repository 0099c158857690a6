// Package walk implements the shared recursive descent over arbitrary Go
// value graphs.
//
// A Walker classifies each value (package kind), recurses into containers,
// routes every non-container through a pluggable Leaf transform, and applies
// an emptiness Policy post-order: a record or sequence is pruned only after
// its children have been transformed and possibly pruned themselves. The
// top-level result is never pruned, only a would-be parent slot is.
//
// Reference containers (pointers, maps, slices) are tracked by identity in a
// CycleTracker with strict enter/exit stack discipline, so traversal
// terminates on any input graph, cyclic or not. What a revisited container
// produces depends on the cycle mode: a literal marker node (serialization)
// or omission of the back-edge slot (coercion).
package walk
