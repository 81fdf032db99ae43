package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarios_Defaults(t *testing.T) {
	scenarios, err := LoadScenarioFile("")
	require.NoError(t, err)
	require.Len(t, scenarios, 6)

	names := make([]string, len(scenarios))
	for i, sc := range scenarios {
		names[i] = sc.Name
	}
	assert.Equal(t, []string{"duplicates", "wide_range", "two_runs", "merge_runs", "empty", "mixed_kinds"}, names)
	assert.Equal(t, OpSort, scenarios[0].Op, "op defaults to sort")
	assert.Equal(t, OpMerge, scenarios[3].Op)
}

func TestLoadScenarios_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown field": "scenarios:\n  - name: a\n    inputs: [1]\n",
		"missing name":  "scenarios:\n  - input: [1]\n",
		"unknown op":    "scenarios:\n  - name: a\n    op: shuffle\n",
		"bad yaml":      "scenarios: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScenarios(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadScenarios_EmptyDocument(t *testing.T) {
	scenarios, err := LoadScenarios(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, scenarios)
}

func TestScenarioRun(t *testing.T) {
	sorted := Scenario{Name: "s", Op: OpSort, Input: []interface{}{3, 1, 2}, Want: []interface{}{1, 2, 3}}
	res := sorted.Run()
	assert.True(t, res.OK)
	assert.Equal(t, []interface{}{1, 2, 3}, res.Output)
	assert.Equal(t, 2, res.Merges)

	merged := Scenario{Name: "m", Op: OpMerge, Left: []interface{}{1, 4}, Right: []interface{}{2, 3}}
	res = merged.Run()
	assert.True(t, res.OK)
	assert.Equal(t, []interface{}{1, 2, 3, 4}, res.Output)
	assert.Equal(t, 1, res.Merges)

	bad := Scenario{Name: "b", Op: OpSort, Input: []interface{}{true}}
	res = bad.Run()
	assert.False(t, res.OK)
	assert.Nil(t, res.Output)
	assert.Contains(t, res.Error, "unordered kind bool")
}

func TestSameValues(t *testing.T) {
	assert.True(t, sameValues(nil, []interface{}{}))
	assert.True(t, sameValues([]interface{}{1, "a"}, []interface{}{1, "a"}))
	assert.False(t, sameValues([]interface{}{1}, []interface{}{1.0}))
	assert.False(t, sameValues([]interface{}{1}, nil))
}
