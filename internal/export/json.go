package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/san-kum/rfcalc/internal/analysis"
	"github.com/san-kum/rfcalc/internal/storage"
)

// Run is the JSON form of a stored sweep. Undefined samples are null.
type Run struct {
	Metadata    *storage.RunMetadata  `json:"metadata"`
	Frequencies []float64             `json:"frequencies"`
	Series      map[string][]*float64 `json:"series"`
}

func NewRun(meta *storage.RunMetadata, res *analysis.Result) Run {
	run := Run{
		Metadata:    meta,
		Frequencies: res.Frequencies,
		Series:      make(map[string][]*float64, len(res.Series)),
	}
	for name, series := range res.Series {
		out := make([]*float64, len(series))
		for i := range series {
			if v := series[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
				out[i] = &v
			}
		}
		run.Series[name] = out
	}
	return run
}

func WriteJSON(w io.Writer, meta *storage.RunMetadata, res *analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewRun(meta, res))
}
