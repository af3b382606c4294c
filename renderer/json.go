package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/assetreturns"
)

// JSON writes the projections as an indented JSON array.
func JSON(w io.Writer, projections []*assetreturns.Projection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(projections); err != nil {
		return fmt.Errorf("encoding projections: %w", err)
	}
	return nil
}

// Query evaluates a jsonpath expression against the JSON form of the
// projections, for instance "$[0].years[-1:].annualPercentage".
func Query(projections []*assetreturns.Projection, path string) (any, error) {
	data, err := json.Marshal(projections)
	if err != nil {
		return nil, fmt.Errorf("encoding projections: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding projections: %w", err)
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath returns either a list or a single value, a list of one is
	// reduced to its value.
	if list, ok := val.([]any); ok && len(list) == 1 {
		val = list[0]
	}
	return val, nil
}
