package walk

// CycleMarker is the literal text emitted for a container that references
// one of its own ancestors, when the walker runs in MarkCycles mode.
const CycleMarker = "[Circular]"

// CycleMode selects what a revisited container resolves to.
type CycleMode int

const (
	// OmitCycles drops the slot holding the back edge.
	OmitCycles CycleMode = iota
	// MarkCycles emits a CycleMarker string node in place of the back edge.
	MarkCycles
)

// CycleTracker is the identity-keyed visited set for the container path
// currently being descended. Identities are reference handles (pointer
// addresses), never structural hashes: two structurally equal but distinct
// containers must not trigger a false cycle.
//
// Enter and Exit follow stack discipline: Enter before recursing into a
// container's children, Exit immediately after, and never Exit a container
// whose Enter reported it already on the path.
type CycleTracker struct {
	onPath map[uintptr]struct{}
}

func NewCycleTracker() *CycleTracker {
	return &CycleTracker{onPath: map[uintptr]struct{}{}}
}

// Enter reports whether ref is already an ancestor on the current path.
// If not, ref is pushed onto the path.
func (t *CycleTracker) Enter(ref uintptr) bool {
	if _, on := t.onPath[ref]; on {
		return true
	}
	t.onPath[ref] = struct{}{}
	return false
}

// Exit pops ref from the current path.
func (t *CycleTracker) Exit(ref uintptr) {
	delete(t.onPath, ref)
}
