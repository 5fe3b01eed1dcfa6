package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
	"github.com/san-kum/rfcalc/internal/tline"
)

// Transfer is a frequency response H(f) for f >= 0.
type Transfer func(f float64) (complex128, error)

// PulseResponse is a sampled real impulse response h(t) in 1/s and the
// matching unit step response.
type PulseResponse struct {
	Dt      float64   `json:"dt"`
	Times   []float64 `json:"times"`
	Impulse []float64 `json:"impulse"`
	Step    []float64 `json:"step"`
}

// ImpulseResponse samples h at n/2+1 equally spaced frequencies from 0 to
// maxFreq, completes the spectrum with its conjugate mirror and inverse
// transforms it. The time step is 1/(2*maxFreq) and the window spans
// n/(2*maxFreq) seconds, so delays longer than that wrap around.
//
// Models undefined at DC (the coaxial cable) use |H| at the first bin for
// the DC term.
func ImpulseResponse(h Transfer, maxFreq float64, n int) (*PulseResponse, error) {
	if err := rf.CheckFrequency(maxFreq); err != nil {
		return nil, fmt.Errorf("pulse max frequency: %w", err)
	}
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("%w: pulse needs an even number of samples >= 4, got %d", rf.ErrParameterBounds, n)
	}

	half := n / 2
	df := maxFreq / float64(half)
	spectrum := make([]complex128, n)

	for k := 1; k <= half; k++ {
		v, err := h(float64(k) * df)
		if err != nil {
			return nil, err
		}
		if !rf.IsFiniteComplex(v) {
			return nil, fmt.Errorf("%w: transfer at %g Hz is %v", rf.ErrNumericalInstability, float64(k)*df, v)
		}
		spectrum[k] = v
		if k < half {
			spectrum[n-k] = cmplx.Conj(v)
		}
	}
	spectrum[half] = complex(real(spectrum[half]), 0)

	dc, err := h(0)
	switch {
	case err == nil:
		spectrum[0] = complex(real(dc), 0)
	case errors.Is(err, rf.ErrInvalidFrequency):
		spectrum[0] = complex(cmplx.Abs(spectrum[1]), 0)
	default:
		return nil, err
	}

	y := fft.IFFT(spectrum)
	dt := 1 / (float64(n) * df)
	res := &PulseResponse{
		Dt:      dt,
		Times:   make([]float64, n),
		Impulse: make([]float64, n),
		Step:    make([]float64, n),
	}
	sum := 0.0
	for i, v := range y {
		res.Times[i] = float64(i) * dt
		res.Impulse[i] = real(v) * float64(n) * df
		sum += real(v)
		res.Step[i] = sum
	}
	return res, nil
}

// MediumTransfer is the plane wave transfer exp(-gamma d) over distance d.
func MediumTransfer(m material.Medium, d float64) Transfer {
	return func(f float64) (complex128, error) {
		gamma, err := m.PropagationConstant(f)
		if err != nil {
			return 0, err
		}
		return cmplx.Exp(-gamma * complex(d, 0)), nil
	}
}

// CableTransfer is the matched-line transfer exp(-gamma l) of a cable
// section of length l. It overwrites the cable's stored RLGC.
func CableTransfer(c *tline.CoaxialCable, length float64) Transfer {
	return func(f float64) (complex128, error) {
		gamma, err := c.PropagationConstant(f)
		if err != nil {
			return 0, err
		}
		return cmplx.Exp(-gamma * complex(length, 0)), nil
	}
}

// Delay returns the time of the steepest rise of the step response.
func (p *PulseResponse) Delay() float64 {
	best, at := math.Inf(-1), 0.0
	for i, v := range p.Impulse {
		if v > best {
			best, at = v, p.Times[i]
		}
	}
	return at
}
