package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/rfcalc/internal/rf"
)

const MinPoints = 2

// Sweep describes an inclusive frequency grid in Hz.
type Sweep struct {
	Start  float64 `yaml:"start" json:"start"`
	Stop   float64 `yaml:"stop" json:"stop"`
	Points int     `yaml:"points" json:"points"`
	Log    bool    `yaml:"log" json:"log"`
}

func (s Sweep) Validate() error {
	if err := rf.CheckFrequency(s.Start); err != nil {
		return fmt.Errorf("sweep start %g: %w", s.Start, err)
	}
	if err := rf.CheckFrequency(s.Stop); err != nil {
		return fmt.Errorf("sweep stop %g: %w", s.Stop, err)
	}
	if s.Start > s.Stop {
		return fmt.Errorf("%w: sweep start %g above stop %g", rf.ErrParameterBounds, s.Start, s.Stop)
	}
	if s.Points < MinPoints {
		return fmt.Errorf("%w: sweep needs at least %d points, got %d", rf.ErrParameterBounds, MinPoints, s.Points)
	}
	return nil
}

// Frequencies returns the grid points. The first and last are exactly
// Start and Stop.
func (s Sweep) Frequencies() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	freqs := make([]float64, s.Points)
	if s.Log {
		floats.LogSpan(freqs, s.Start, s.Stop)
	} else {
		floats.Span(freqs, s.Start, s.Stop)
	}
	freqs[0], freqs[s.Points-1] = s.Start, s.Stop
	return freqs, nil
}
