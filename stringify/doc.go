// Package stringify renders arbitrary value graphs as stable text.
//
// Stability is the defining property: structurally identical inputs produce
// byte-identical output regardless of how their records were built or in
// what order keys were inserted. Record keys sort lexicographically by
// default at every nesting level, and sequences can optionally be sorted
// under the engine's total order. Reference cycles terminate with the
// literal "[Circular]" marker.
package stringify
