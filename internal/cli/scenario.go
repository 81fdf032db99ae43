package cli

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsort/mergesort"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// Scenario operations.
const (
	OpSort  = "sort"
	OpMerge = "merge"
)

// ErrNotInteger is returned when a merge operand holds a non-integer value.
var ErrNotInteger = errors.New("merge operands must be integers")

// ScenarioFile is the top-level document of a scenario file.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one driver call: a sort of Input or a merge of Left and Right.
type Scenario struct {
	// Name identifies the scenario in output.
	Name string `yaml:"name"`

	// Op is "sort" (default) or "merge".
	Op string `yaml:"op,omitempty"`

	// Input is the sequence to sort. Numbers and strings are accepted.
	Input []interface{} `yaml:"input,omitempty"`

	// Left and Right are the sorted integer runs to merge.
	Left  []interface{} `yaml:"left,omitempty"`
	Right []interface{} `yaml:"right,omitempty"`

	// Want, when present, is the expected output.
	Want []interface{} `yaml:"want,omitempty"`

	// Fails marks a scenario whose call is expected to return an error.
	Fails bool `yaml:"fails,omitempty"`
}

// ScenarioResult records the outcome of running one Scenario.
type ScenarioResult struct {
	Name   string        `json:"name"`
	Op     string        `json:"op"`
	Input  []interface{} `json:"input,omitempty"`
	Left   []interface{} `json:"left,omitempty"`
	Right  []interface{} `json:"right,omitempty"`
	Output []interface{} `json:"output"`
	Error  string        `json:"error,omitempty"`
	Merges int           `json:"merges"`
	OK     bool          `json:"ok"`
}

// LoadScenarios decodes a scenario document. Unknown fields and unknown
// operations are rejected.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file ScenarioFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}

	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i)
		}
		if sc.Op == "" {
			sc.Op = OpSort
		}
		if sc.Op != OpSort && sc.Op != OpMerge {
			return nil, fmt.Errorf("scenario %q: unknown op %q", sc.Name, sc.Op)
		}
	}

	return file.Scenarios, nil
}

// LoadScenarioFile reads scenarios from path, or the built-in set when path is empty.
func LoadScenarioFile(path string) ([]Scenario, error) {
	if path == "" {
		return LoadScenarios(bytes.NewReader(defaultScenarios))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadScenarios(f)
}

// Run executes the scenario. Sort scenarios go through mergesort.SortValues,
// merge scenarios through mergesort.Merge on integers.
func (sc Scenario) Run() ScenarioResult {
	res := ScenarioResult{Name: sc.Name, Op: sc.Op}
	hook := mergesort.WithOnMerge(func(int, int, int) { res.Merges++ })

	var err error
	switch sc.Op {
	case OpMerge:
		res.Left, res.Right = sc.Left, sc.Right
		res.Output, err = mergeValues(sc.Left, sc.Right)
		if err == nil {
			res.Merges = 1
		}
	default:
		res.Input = sc.Input
		res.Output, err = mergesort.SortValues(sc.Input, hook)
	}

	if err != nil {
		res.Output = nil
		res.Error = err.Error()
		res.OK = sc.Fails
		return res
	}
	res.OK = !sc.Fails && (sc.Want == nil || sameValues(res.Output, sc.Want))

	return res
}

// mergeValues merges two integer runs decoded from YAML.
func mergeValues(left, right []interface{}) ([]interface{}, error) {
	l, err := toInts(left)
	if err != nil {
		return nil, err
	}
	r, err := toInts(right)
	if err != nil {
		return nil, err
	}

	merged := mergesort.Merge(l, r)
	out := make([]interface{}, len(merged))
	for i, v := range merged {
		out[i] = v
	}

	return out, nil
}

func toInts(vs []interface{}) ([]int, error) {
	out := make([]int, len(vs))
	for i, v := range vs {
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrNotInteger, i, v)
		}
		out[i] = n
	}

	return out, nil
}

// sameValues compares element-wise, treating nil and empty slices as equal.
func sameValues(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}

	return true
}
