package statkit

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ChainDump is a serializable representation of a Chain.
type ChainDump struct {
	Boundaries []float64 `json:"boundaries"`
	Lines      []Line    `json:"lines"`
}

// Dump generates a serializable dump of the chain.
func (c Chain) Dump() *ChainDump {
	return &ChainDump{
		Boundaries: slices.Clone(c.Boundaries),
		Lines:      slices.Clone(c.Lines),
	}
}

// ChainFromDump restores a chain from a dump. The dump is validated
// rather than trusted: there must be exactly one more boundary than
// lines, and the boundaries must be in ascending order.
func ChainFromDump(d *ChainDump) (Chain, error) {
	if len(d.Boundaries) != len(d.Lines)+1 {
		return Chain{}, fmt.Errorf("chain dump: %d boundaries for %d lines: %w",
			len(d.Boundaries), len(d.Lines), ErrLengthMismatch)
	}
	if !slices.IsSorted(d.Boundaries) {
		return Chain{}, fmt.Errorf("chain dump: %w", ErrUnsortedBoundaries)
	}
	return Chain{
		Boundaries: slices.Clone(d.Boundaries),
		Lines:      slices.Clone(d.Lines),
	}, nil
}

// MarshalJSON implements the json.Marshaler interface for Chain.
func (c Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Chain.
func (c *Chain) UnmarshalJSON(data []byte) error {
	var d ChainDump
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	restored, err := ChainFromDump(&d)
	if err != nil {
		return err
	}
	*c = restored
	return nil
}
