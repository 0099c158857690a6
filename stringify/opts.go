package stringify

type options struct {
	sortKeys      bool
	sortSequences bool
	pretty        bool
}

type Option func(*options)

// SortKeys controls record key ordering: ascending lexicographic when true
// (the default), original field order when false. Applies independently at
// every nesting level.
func SortKeys(v bool) Option {
	return func(o *options) { o.sortKeys = v }
}

// SortSequences sorts sequence elements under the engine's total order,
// recursively at every level. Off by default.
func SortSequences(v bool) Option {
	return func(o *options) { o.sortSequences = v }
}

// Pretty switches output to a two-space-indented multi-line layout.
func Pretty(v bool) Option {
	return func(o *options) { o.pretty = v }
}
