// Package wire converts operation results to and from JSON. Plain JSON has no
// encoding for NaN or the infinities, so results are normalized first:
// non-finite numbers become the strings "NaN", "+Inf" and "-Inf", which are
// also the spellings the argument decoder accepts.
package wire

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/aretw0/digit/pkg/geom"
	"github.com/goccy/go-json"
)

// Non-finite spellings.
const (
	NaN    = "NaN"
	PosInf = "+Inf"
	NegInf = "-Inf"
)

// Normalize returns v with every non-finite float replaced by its string
// spelling. Points become {"x","y"} maps so their coordinates can be rewritten
// too. Other values are returned unchanged.
func Normalize(v any) any {
	switch x := v.(type) {
	case float64:
		return number(x)
	case float32:
		return number(float64(x))
	case geom.Point2D:
		return map[string]any{"x": number(x.X), "y": number(x.Y)}
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = number(f)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Normalize(e)
		}
		return out
	default:
		return v
	}
}

func number(f float64) any {
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return PosInf
	case math.IsInf(f, -1):
		return NegInf
	default:
		return f
	}
}

// Marshal normalizes v and encodes it as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(Normalize(v))
}

// Encode writes v to w as a single line of normalized JSON.
func Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(Normalize(v))
}

// DecodeArgs reads a JSON object of operation arguments. An empty body decodes
// to an empty map.
func DecodeArgs(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	args := make(map[string]any)
	if len(bytes.TrimSpace(data)) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}
	return args, nil
}
