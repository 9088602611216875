package model

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// SKLearnModelSpec identifies the model type and format version of an
// exchanged model file.
type SKLearnModelSpec struct {
	Name          string `json:"name"`
	FormatVersion string `json:"format_version"`
}

// SKLearnModel is the envelope for scikit-learn compatible model exchange.
// Params holds the model-specific payload as raw JSON.
type SKLearnModel struct {
	ModelSpec SKLearnModelSpec `json:"model_spec"`
	Params    json.RawMessage  `json:"params"`
}

// SKLearnLinearRegressionParams is the parameter payload for a fitted
// LinearRegression, matching scikit-learn's coef_/intercept_ attributes.
type SKLearnLinearRegressionParams struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	NFeatures    int       `json:"n_features"`
}

// LoadSKLearnModelFromReader decodes a model envelope from r.
func LoadSKLearnModelFromReader(r io.Reader) (*SKLearnModel, error) {
	var skModel SKLearnModel
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&skModel); err != nil {
		return nil, fmt.Errorf("failed to decode sklearn model: %w", err)
	}
	if skModel.ModelSpec.Name == "" {
		return nil, fmt.Errorf("sklearn model is missing model_spec.name")
	}
	return &skModel, nil
}

// LoadLinearRegressionParams extracts LinearRegression parameters from a
// decoded model envelope.
func LoadLinearRegressionParams(skModel *SKLearnModel) (*SKLearnLinearRegressionParams, error) {
	if skModel.ModelSpec.Name != "LinearRegression" {
		return nil, fmt.Errorf("expected LinearRegression model, got %q", skModel.ModelSpec.Name)
	}

	var params SKLearnLinearRegressionParams
	if err := json.Unmarshal(skModel.Params, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal params: %w", err)
	}

	if len(params.Coefficients) == 0 {
		return nil, fmt.Errorf("model has no coefficients")
	}
	if params.NFeatures == 0 {
		params.NFeatures = len(params.Coefficients)
	}
	if len(params.Coefficients) != params.NFeatures {
		return nil, fmt.Errorf("n_features is %d but %d coefficients given",
			params.NFeatures, len(params.Coefficients))
	}
	return &params, nil
}
