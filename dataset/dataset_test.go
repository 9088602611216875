package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/regressio/regressio/pkg/errors"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		x   []float64
		y   []float64
		err error
	}{
		"empty data": {
			err: errors.ErrEmptyData,
		},
		"length mismatch": {
			x:   []float64{1, 2},
			y:   []float64{1},
			err: &errors.DimensionError{},
		},
		"valid": {
			x: []float64{1, 2, 3},
			y: []float64{2, 4, 6},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := New("test", td.x, td.y)
			if td.err != nil {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.x, ds.X)
			assert.Equal(t, td.y, ds.Y)
			assert.Equal(t, len(td.x), ds.Len())
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}

	ds, err := New("test", x, y)
	require.NoError(t, err)

	x[0] = 99
	y[0] = 99
	assert.Equal(t, 1.0, ds.X[0], "dataset must not alias caller slices")
	assert.Equal(t, 2.0, ds.Y[0], "dataset must not alias caller slices")
}

func TestAnscombe_Names(t *testing.T) {
	assert.Equal(t, []string{"I", "II", "III", "IV"}, AnscombeNames())

	for _, name := range AnscombeNames() {
		ds, err := Anscombe(name)
		require.NoError(t, err)
		assert.Equal(t, 11, ds.Len())
	}
}

func TestAnscombe_Unknown(t *testing.T) {
	_, err := Anscombe("V")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDataset))
}

func TestAnscombe_SharedStatistics(t *testing.T) {
	// The whole point of the quartet: all four datasets share means and a
	// least-squares line of slope ≈ 0.5, intercept ≈ 3.0.
	for _, name := range AnscombeNames() {
		ds, err := Anscombe(name)
		require.NoError(t, err)

		assert.InDelta(t, 9.0, stat.Mean(ds.X, nil), 1e-9, "dataset %s x mean", name)
		assert.InDelta(t, 7.5, stat.Mean(ds.Y, nil), 0.01, "dataset %s y mean", name)

		intercept, slope := stat.LinearRegression(ds.X, ds.Y, nil, false)
		assert.InDelta(t, 0.5, slope, 0.002, "dataset %s slope", name)
		assert.InDelta(t, 3.0, intercept, 0.01, "dataset %s intercept", name)
	}
}

func TestDataset_Matrices(t *testing.T) {
	ds, err := Anscombe("I")
	require.NoError(t, err)

	X := ds.XMatrix()
	r, c := X.Dims()
	assert.Equal(t, 11, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, ds.X[0], X.At(0, 0))

	Y := ds.YMatrix()
	r, c = Y.Dims()
	assert.Equal(t, 11, r)
	assert.Equal(t, 1, c)

	// Matrices are copies, not views of the dataset.
	X.Set(0, 0, 42)
	assert.NotEqual(t, 42.0, ds.X[0])
}

func TestDataset_Copy(t *testing.T) {
	ds, err := Anscombe("II")
	require.NoError(t, err)

	cp := ds.Copy()
	cp.X[0] = 42
	assert.NotEqual(t, 42.0, ds.X[0])
	assert.Equal(t, ds.Name, cp.Name)
}
