// Package mergepatch applies JSON patches to arbitrary walkable values
// through the stable-serialization bridge: the document and patch are
// serialized, patched as JSON, and the result comes back as plain Go data.
package mergepatch

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/deepval-dev/go-deepval/stringify"
)

// Apply applies an RFC 7386 merge patch to doc. Any walkable value works on
// either side; the result is generic Go data (maps, slices, scalars).
func Apply(doc, patch any) (any, error) {
	docBytes, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	patchBytes, err := marshal(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(docBytes, patchBytes)
	if err != nil {
		return nil, fmt.Errorf("mergepatch: %w", err)
	}
	return unmarshal(out)
}

// ApplyOps applies an RFC 6902 operation list to doc.
func ApplyOps(doc, ops any) (any, error) {
	opsBytes, err := marshal(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(opsBytes)
	if err != nil {
		return nil, fmt.Errorf("mergepatch: %w", err)
	}
	docBytes, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(docBytes)
	if err != nil {
		return nil, fmt.Errorf("mergepatch: %w", err)
	}
	return unmarshal(out)
}

func marshal(v any) ([]byte, error) {
	s, err := stringify.Serialize(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func unmarshal(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("mergepatch: %w", err)
	}
	return v, nil
}
