package linear

import (
	"bytes"
	"encoding/gob"

	"gonum.org/v1/gonum/mat"

	"github.com/regressio/regressio/pkg/errors"
)

// regressionState is the gob wire form of a Regression. The struct fields
// of Regression are unexported, so gob round-trips go through this type.
type regressionState struct {
	Coefficients []float64
	Intercept    float64
	NFeatures    int
	Fitted       bool
}

// GobEncode implements gob.GobEncoder so that Regression works with
// model.SaveModel / model.LoadModel.
func (r *Regression) GobEncode() ([]byte, error) {
	state := regressionState{
		Coefficients: r.Coefficients(),
		Intercept:    r.intercept,
		NFeatures:    r.nFeatures,
		Fitted:       r.IsFitted(),
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (r *Regression) GobDecode(data []byte) error {
	var state regressionState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return err
	}

	if state.Fitted && len(state.Coefficients) == 0 {
		return errors.NewValueError("Regression.GobDecode", "fitted state carries no coefficients")
	}

	r.intercept = state.Intercept
	r.nFeatures = state.NFeatures
	if len(state.Coefficients) > 0 {
		r.coefficients = mat.NewVecDense(len(state.Coefficients), state.Coefficients)
	} else {
		r.coefficients = nil
	}
	if state.Fitted {
		r.SetFitted()
	} else {
		r.Reset()
	}
	return nil
}
