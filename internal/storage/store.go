package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/rfcalc/internal/analysis"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a stored sweep. Kind is "medium" or "cable" and
// Subject names the material or cable that was swept.
type RunMetadata struct {
	ID         string                 `json:"id"`
	Kind       string                 `json:"kind"`
	Subject    string                 `json:"subject"`
	Timestamp  time.Time              `json:"timestamp"`
	Sweep      analysis.Sweep         `json:"sweep"`
	Quantities []string               `json:"quantities"`
	Units      map[string]string      `json:"units,omitempty"`
	Params     map[string]float64     `json:"params,omitempty"`
	Errors     []analysis.SampleError `json:"errors,omitempty"`
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
	if s == "" {
		return "run"
	}
	return s
}

// Save writes meta and the sweep samples under a new run directory and
// returns the run ID. ID, Timestamp, Quantities and Errors are filled in
// from the result.
func (s *Store) Save(meta RunMetadata, result *analysis.Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("storage: nil result")
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%s", slug(meta.Subject), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Quantities = result.Quantities
	meta.Errors = result.Errors

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, samplesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	header := append([]string{"frequency"}, result.Quantities...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, f := range result.Frequencies {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(f, 'g', -1, 64))
		for _, name := range result.Quantities {
			row = append(row, strconv.FormatFloat(result.Series[name][i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns the stored runs, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadSamples reads the sample table of a run back into a Result. Sample
// errors are only kept in the metadata and are not restored.
func (s *Store) LoadSamples(runID string) (*analysis.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s samples: %w", runID, err)
	}
	if len(records) == 0 || len(records[0]) == 0 || records[0][0] != "frequency" {
		return nil, fmt.Errorf("run %s samples: missing header", runID)
	}

	names := records[0][1:]
	res := &analysis.Result{
		Frequencies: make([]float64, 0, len(records)-1),
		Quantities:  names,
		Series:      make(map[string][]float64, len(names)),
	}
	for _, name := range names {
		res.Series[name] = make([]float64, 0, len(records)-1)
	}

	for line, record := range records[1:] {
		f, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s samples line %d: %w", runID, line+2, err)
		}
		res.Frequencies = append(res.Frequencies, f)
		for j, name := range names {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s samples line %d: %w", runID, line+2, err)
			}
			res.Series[name] = append(res.Series[name], v)
		}
	}
	return res, nil
}
