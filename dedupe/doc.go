// Package dedupe removes structurally equal elements from sequences.
//
// Equality is deep-structural, never reference identity: two distinct
// sequences with equal corresponding elements collapse, and NaN is
// self-equal for dedup purposes. Nested sequences are recursively
// deduplicated with fresh seen sets; the Flatten option instead flattens
// sequences, set-likes and map-like values (to their values) at unbounded
// depth before a single dedup pass. The ForceString option converts
// elements to text at one of three graduated levels first, with equality
// judged on the converted values.
package dedupe
