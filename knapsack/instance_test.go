package knapsack_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/knapsack"
)

func TestParse_ValidCSV(t *testing.T) {
	src := "weight,value,capacity\n1,1,4\n3,4,\n4,5,\n"
	in, err := knapsack.Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 4}, in.Weights)
	assert.Equal(t, []int{1, 4, 5}, in.Values)
	assert.Equal(t, 4, in.Capacity)
	assert.False(t, in.UsedFallback)
}

func TestParse_HeaderOrderAndCase(t *testing.T) {
	src := "Capacity, Value ,WEIGHT,label\n10,7,2,a\n,3,5,b\n"
	in, err := knapsack.Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 5}, in.Weights)
	assert.Equal(t, []int{7, 3}, in.Values)
	assert.Equal(t, 10, in.Capacity)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", knapsack.ErrMissingColumn},
		{"no capacity column", "weight,value\n1,2\n", knapsack.ErrMissingColumn},
		{"header only", "weight,value,capacity\n", knapsack.ErrNoRows},
		{"bad weight", "weight,value,capacity\nx,2,3\n", knapsack.ErrBadNumber},
		{"negative value", "weight,value,capacity\n1,-2,3\n", knapsack.ErrNegative},
		{"missing capacity", "weight,value,capacity\n1,2,\n", knapsack.ErrBadNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := knapsack.Parse(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_FallsBackOnGarbage(t *testing.T) {
	in := knapsack.LoadBytes([]byte("not,a,knapsack\n"))

	assert.True(t, in.UsedFallback)
	assert.NotEmpty(t, in.FallbackReason)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, in.Weights)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, in.Values)
	assert.Equal(t, 15, in.Capacity)
}

func TestNewInstance_Rejects(t *testing.T) {
	_, err := knapsack.NewInstance([]int{1}, []int{1, 2}, 3)
	require.ErrorIs(t, err, knapsack.ErrLengthMismatch)

	_, err = knapsack.NewInstance([]int{1}, []int{1}, -1)
	require.ErrorIs(t, err, knapsack.ErrNegative)
}

func TestNewInstance_BoundsTotals(t *testing.T) {
	_, err := knapsack.NewInstance([]int{1}, []int{1}, math.MaxInt)
	require.ErrorIs(t, err, knapsack.ErrBadNumber)

	_, err = knapsack.NewInstance([]int{knapsack.MaxTotal, 1}, []int{1, 1}, 10)
	require.ErrorIs(t, err, knapsack.ErrBadNumber)

	_, err = knapsack.NewInstance([]int{1, 1}, []int{knapsack.MaxTotal, 1}, 10)
	require.ErrorIs(t, err, knapsack.ErrBadNumber)

	in, err := knapsack.NewInstance([]int{knapsack.MaxTotal - 1, 1}, []int{1, 1}, knapsack.MaxTotal)
	require.NoError(t, err)
	require.Equal(t, 2, in.Len())
}

// Two max-int64 weights used to wrap the running weight negative.
func TestLoad_HugeWeightsFallBack(t *testing.T) {
	src := "weight,value,capacity\n9223372036854775807,1,10\n9223372036854775807,1,\n"
	_, err := knapsack.Parse(strings.NewReader(src))
	require.ErrorIs(t, err, knapsack.ErrBadNumber)

	in := knapsack.LoadBytes([]byte(src))
	require.True(t, in.UsedFallback)
	require.Contains(t, in.FallbackReason, "malformed number")
	require.Equal(t, 5, in.Len())
}

func TestValidate(t *testing.T) {
	in := scenarioB(t)

	_, _, err := knapsack.Validate(in, []int{0, 0})
	require.ErrorIs(t, err, knapsack.ErrBadSelection)

	_, _, err = knapsack.Validate(in, []int{3})
	require.ErrorIs(t, err, knapsack.ErrBadSelection)

	_, _, err = knapsack.Validate(in, []int{1, 2})
	require.ErrorIs(t, err, knapsack.ErrOverCapacity)

	w, v, err := knapsack.Validate(in, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 4, w)
	assert.Equal(t, 5, v)
}

func TestValidate_OverflowingTotals(t *testing.T) {
	in := &knapsack.Instance{
		Weights:  []int{math.MaxInt, math.MaxInt},
		Values:   []int{1, 1},
		Capacity: math.MaxInt,
	}
	_, _, err := knapsack.Validate(in, []int{0, 1})
	require.ErrorIs(t, err, knapsack.ErrBadNumber)
}
