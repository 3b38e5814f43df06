package query

import (
	"encoding/json"
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/go-drift/q/pkg/errors"
)

// Select evaluates a JSONPath expression against the snapshot of the
// matched nodes and returns the located values. The document root is the
// snapshot object, so paths address the serialized tree:
//
//	texts, err := res.Select(`$.nodes[0].children[*].text`)
//
// Selection reads a capture, never the live tree; it cannot observe
// mutations made after the call.
func (r Result) Select(expr string) ([]any, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, &errors.Error{
			Op:   "query.Select",
			Kind: errors.KindQuery,
			Err:  fmt.Errorf("invalid JSONPath %q: %w", expr, err),
		}
	}

	snap := r.Snapshot()
	snap.Runtime = "" // instance id is noise for structural selection
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, &errors.Error{Op: "query.Select", Kind: errors.KindQuery, Err: err}
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &errors.Error{Op: "query.Select", Kind: errors.KindQuery, Err: err}
	}

	located := path.Select(doc)
	out := make([]any, 0, len(located))
	for _, v := range located {
		out = append(out, v)
	}
	return out, nil
}
