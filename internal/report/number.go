package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/worldforge/internal/celestial"
)

// Number is a float64 that still encodes as JSON when it is not finite.
// NaN and the infinities are written as the strings "NaN", "+Inf" and "-Inf";
// YAML writes them natively as .nan and .inf.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("report: bad number %q: %w", s, err)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func Numbers(xs []float64) []Number {
	if xs == nil {
		return nil
	}
	out := make([]Number, len(xs))
	for i, x := range xs {
		out[i] = Number(x)
	}
	return out
}

func NumberMap(m map[string]float64) map[string]Number {
	out := make(map[string]Number, len(m))
	for k, v := range m {
		out[k] = Number(v)
	}
	return out
}

// Span is a celestial.Range whose bounds survive JSON encoding.
type Span struct {
	Lower Number `json:"lower" yaml:"lower"`
	Upper Number `json:"upper" yaml:"upper"`
}

func spanOf(r celestial.Range) Span {
	return Span{Lower: Number(r.Lower), Upper: Number(r.Upper)}
}

func spansOf(rs []celestial.Range) []Span {
	out := make([]Span, len(rs))
	for i, r := range rs {
		out[i] = spanOf(r)
	}
	return out
}
