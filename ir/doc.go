// Package ir defines the output node tree produced by the traversal engine.
//
// A Node is a recursive tagged union restricted to the representable output
// kinds: null, boolean, number, string, ordered object and ordered array.
// Collection values that have no direct analog in that set (map-like and
// set-like inputs) are represented as objects carrying a wrapper Tag so that
// downstream consumers can rebuild them.
//
// Nodes carry a deterministic total order (Compare) and a structural hash
// (Hash); together these back sequence sorting and structural-equality sets.
// ToAny bridges a node tree back to plain Go values.
package ir
