package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
	"github.com/san-kum/rfcalc/internal/tline"
)

// SampleError records a quantity that could not be evaluated at one
// frequency.
type SampleError struct {
	Quantity  string  `json:"quantity"`
	Frequency float64 `json:"frequency"`
	Message   string  `json:"message"`
	Err       error   `json:"-"`
}

func (e SampleError) Error() string {
	return fmt.Sprintf("%s at %g Hz: %s", e.Quantity, e.Frequency, e.Message)
}

func (e SampleError) Unwrap() error { return e.Err }

// Result holds one series per quantity, aligned with Frequencies.
type Result struct {
	Frequencies []float64            `json:"frequencies"`
	Quantities  []string             `json:"quantities"`
	Series      map[string][]float64 `json:"series"`
	Errors      []SampleError        `json:"errors,omitempty"`
}

func newResult(freqs []float64, names []string) *Result {
	res := &Result{
		Frequencies: freqs,
		Quantities:  names,
		Series:      make(map[string][]float64, len(names)),
	}
	for _, name := range names {
		res.Series[name] = make([]float64, len(freqs))
	}
	return res
}

func (res *Result) fail(i int, name string, err error) {
	res.Series[name][i] = math.NaN()
	res.Errors = append(res.Errors, SampleError{
		Quantity:  name,
		Frequency: res.Frequencies[i],
		Message:   err.Error(),
		Err:       err,
	})
}

func (res *Result) set(i int, name string, v float64, err error) {
	if err == nil && !rf.IsFinite(v) {
		err = fmt.Errorf("%w: %s is %g", rf.ErrNumericalInstability, name, v)
	}
	if err != nil {
		res.fail(i, name, err)
		return
	}
	res.Series[name][i] = v
}

func (r *Registry) resolve(names []string, known func(string) bool, all func() []Quantity) ([]string, error) {
	if len(names) == 0 {
		for _, q := range all() {
			names = append(names, q.Name)
		}
		return names, nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !known(name) {
			return nil, fmt.Errorf("%w: unknown quantity %q", rf.ErrParameterBounds, name)
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, nil
}

// RunMedium evaluates the named medium quantities at every sweep point.
// An empty list selects every registered medium quantity.
func (r *Registry) RunMedium(m material.Medium, s Sweep, names []string) (*Result, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}
	names, err = r.resolve(names, r.IsMedium, r.ListMedium)
	if err != nil {
		return nil, err
	}

	res := newResult(freqs, names)
	for i, f := range freqs {
		for _, name := range names {
			v, err := r.medium[name].eval(m, f)
			res.set(i, name, v, err)
		}
	}
	return res, nil
}

// RunCable evaluates the named line quantities of a coaxial cable at every
// sweep point. When the cable model fails at a frequency every quantity at
// that point is NaN. The cable's stored RLGC is left at the last frequency
// that succeeded.
func (r *Registry) RunCable(c *tline.CoaxialCable, s Sweep, names []string) (*Result, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}
	names, err = r.resolve(names, r.IsLine, r.ListLine)
	if err != nil {
		return nil, err
	}

	res := newResult(freqs, names)
	for i, f := range freqs {
		p, err := c.CalculateRLGC(f)
		for _, name := range names {
			if err != nil {
				res.fail(i, name, err)
				continue
			}
			v, qerr := r.line[name].eval(p, f)
			res.set(i, name, v, qerr)
		}
	}
	return res, nil
}

func RunMedium(m material.Medium, s Sweep, names []string) (*Result, error) {
	return defaultRegistry.RunMedium(m, s, names)
}

func RunCable(c *tline.CoaxialCable, s Sweep, names []string) (*Result, error) {
	return defaultRegistry.RunCable(c, s, names)
}

// Failed reports the number of NaN samples of the named series.
func (res *Result) Failed(name string) int {
	n := 0
	for _, v := range res.Series[name] {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
