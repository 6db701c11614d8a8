package readings

import (
	"testing"

	"heating-temp-receiver/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidate_EmptyInput(t *testing.T) {
	_, err := Consolidate(nil)
	require.Error(t, err)
}

func TestConsolidate_SingleReading(t *testing.T) {
	r := types.Reading{Timestamp: 1520548424, Temperature: 21.5}
	out, err := Consolidate([]types.Reading{r})
	require.NoError(t, err)
	assert.Equal(t, []types.Reading{r}, out)
}

func TestConsolidate_SortsAndDeduplicates(t *testing.T) {
	r1 := types.Reading{Timestamp: 1520548424, Temperature: 1}
	r2 := types.Reading{Timestamp: 1520549024, Temperature: 2}
	r3 := types.Reading{Timestamp: 1520549624, Temperature: 3}

	// shuffled input with repeated timestamps
	in := []types.Reading{r3, r1, r3, r2, r1, r2, r1}
	out, err := Consolidate(in)
	require.NoError(t, err)
	assert.Equal(t, []types.Reading{r1, r2, r3}, out)
}

func TestConsolidate_FirstOfEqualTimestampsWins(t *testing.T) {
	// stable sort: for equal timestamps the earlier input element is
	// retained, regardless of temperature
	in := []types.Reading{
		{Timestamp: 1520548424, Temperature: 5},
		{Timestamp: 1520548424, Temperature: 9},
		{Timestamp: 1520548400, Temperature: 7},
	}
	out, err := Consolidate(in)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 7.0, out[0].Temperature)
	assert.Equal(t, 5.0, out[1].Temperature)
}

func TestConsolidate_Idempotent(t *testing.T) {
	in := []types.Reading{
		{Timestamp: 1520549624, Temperature: 3},
		{Timestamp: 1520548424, Temperature: 1},
		{Timestamp: 1520548424, Temperature: 4},
		{Timestamp: 1520549024, Temperature: 2},
	}
	once, err := Consolidate(in)
	require.NoError(t, err)
	twice, err := Consolidate(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestConsolidate_OutputSortedAndUnique(t *testing.T) {
	in := []types.Reading{
		{Timestamp: 3}, {Timestamp: 1}, {Timestamp: 2},
		{Timestamp: 3}, {Timestamp: 1}, {Timestamp: 5},
	}
	out, err := Consolidate(in)
	require.NoError(t, err)
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].Timestamp, out[i-1].Timestamp)
	}
}

func TestConsolidate_DoesNotMutateInput(t *testing.T) {
	in := []types.Reading{{Timestamp: 2}, {Timestamp: 1}}
	_, err := Consolidate(in)
	require.NoError(t, err)
	assert.Equal(t, 2.0, in[0].Timestamp)
}
