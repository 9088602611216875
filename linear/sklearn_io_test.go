package linear

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/regressio/regressio/pkg/errors"
)

func TestRegression_SKLearnRoundTrip(t *testing.T) {
	reg := NewRegression()
	if err := reg.FitSimple([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}); err != nil {
		t.Fatalf("FitSimple failed: %v", err)
	}

	var buf bytes.Buffer
	if err := reg.ExportToSKLearnWriter(&buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"LinearRegression"`) {
		t.Errorf("exported JSON missing model name: %s", buf.String())
	}

	loaded := NewRegression()
	if err := loaded.LoadFromSKLearnReader(&buf); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.IsFitted() {
		t.Fatal("loaded model must be fitted")
	}

	if d := math.Abs(loaded.Coefficients()[0] - reg.Coefficients()[0]); d > 1e-12 {
		t.Errorf("slope changed through round trip: %v vs %v",
			reg.Coefficients()[0], loaded.Coefficients()[0])
	}
	if d := math.Abs(loaded.Intercept() - reg.Intercept()); d > 1e-12 {
		t.Errorf("intercept changed through round trip: %v vs %v",
			reg.Intercept(), loaded.Intercept())
	}

	preds, err := loaded.PredictVec([]float64{5, 6})
	if err != nil {
		t.Fatalf("PredictVec on loaded model failed: %v", err)
	}
	for i, want := range []float64{11, 13} {
		if math.Abs(preds[i]-want) > 1e-12 {
			t.Errorf("prediction[%d] = %v, want %v", i, preds[i], want)
		}
	}
}

func TestRegression_ExportUnfitted(t *testing.T) {
	reg := NewRegression()

	var buf bytes.Buffer
	err := reg.ExportToSKLearnWriter(&buf)
	if err == nil {
		t.Fatal("export of an unfitted model must fail")
	}
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("expected NotFittedError, got %T: %v", err, err)
	}
}

func TestRegression_LoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "invalid json", json: `{`},
		{name: "missing model spec", json: `{"params": {}}`},
		{
			name: "wrong model name",
			json: `{"model_spec": {"name": "KMeans", "format_version": "1.0"}, "params": {}}`,
		},
		{
			name: "coefficient count mismatch",
			json: `{"model_spec": {"name": "LinearRegression", "format_version": "1.0"},
			        "params": {"coefficients": [1.0], "intercept": 0.0, "n_features": 3}}`,
		},
		{
			name: "empty coefficients",
			json: `{"model_spec": {"name": "LinearRegression", "format_version": "1.0"},
			        "params": {"coefficients": [], "intercept": 0.0, "n_features": 0}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegression()
			if err := reg.LoadFromSKLearnReader(strings.NewReader(tt.json)); err == nil {
				t.Error("expected load error, got nil")
			}
			if reg.IsFitted() {
				t.Error("failed load must not mark the model fitted")
			}
		})
	}
}
