package linear

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"

	"github.com/regressio/regressio/core/model"
	"github.com/regressio/regressio/pkg/errors"
)

// LoadFromSKLearn loads fitted parameters from a JSON file exported by
// scikit-learn (or by ExportToSKLearn).
//
// Example:
//
//	reg := NewRegression()
//	err := reg.LoadFromSKLearn("sklearn_model.json")
func (r *Regression) LoadFromSKLearn(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return r.LoadFromSKLearnReader(file)
}

// LoadFromSKLearnReader loads fitted parameters from a reader holding a
// scikit-learn compatible JSON model.
func (r *Regression) LoadFromSKLearnReader(rd io.Reader) error {
	skModel, err := model.LoadSKLearnModelFromReader(rd)
	if err != nil {
		return fmt.Errorf("failed to load sklearn model: %w", err)
	}

	params, err := model.LoadLinearRegressionParams(skModel)
	if err != nil {
		return fmt.Errorf("failed to load linear regression params: %w", err)
	}

	r.nFeatures = params.NFeatures
	r.intercept = params.Intercept
	r.coefficients = mat.NewVecDense(len(params.Coefficients), params.Coefficients)
	r.SetFitted()

	return nil
}

// ExportToSKLearn writes the fitted model to a scikit-learn compatible
// JSON file.
func (r *Regression) ExportToSKLearn(filename string) error {
	if !r.IsFitted() {
		return errors.NewNotFittedError("Regression", "ExportToSKLearn")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return r.ExportToSKLearnWriter(file)
}

// ExportToSKLearnWriter writes the fitted model to w in scikit-learn
// compatible JSON form.
func (r *Regression) ExportToSKLearnWriter(w io.Writer) error {
	if !r.IsFitted() {
		return errors.NewNotFittedError("Regression", "ExportToSKLearnWriter")
	}

	params := model.SKLearnLinearRegressionParams{
		Coefficients: r.Coefficients(),
		Intercept:    r.intercept,
		NFeatures:    r.nFeatures,
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	skModel := model.SKLearnModel{
		ModelSpec: model.SKLearnModelSpec{
			Name:          "LinearRegression",
			FormatVersion: "1.0",
		},
		Params: paramsJSON,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&skModel); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	return nil
}
