package linear

import (
	"bytes"
	"encoding/gob"
	"math"
	"testing"

	"github.com/regressio/regressio/core/model"
)

func TestRegression_GobRoundTrip(t *testing.T) {
	reg := NewRegression()
	if err := reg.FitSimple([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}); err != nil {
		t.Fatalf("FitSimple failed: %v", err)
	}

	var buf bytes.Buffer
	if err := model.SaveModelToWriter(reg, &buf); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := NewRegression()
	if err := model.LoadModelFromReader(loaded, &buf); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !loaded.IsFitted() {
		t.Fatal("loaded model must be fitted")
	}
	if d := math.Abs(loaded.Coefficients()[0] - 2.0); d > 1e-12 {
		t.Errorf("slope changed through gob round trip: got %v", loaded.Coefficients()[0])
	}
	if d := math.Abs(loaded.Intercept()); d > 1e-12 {
		t.Errorf("intercept changed through gob round trip: got %v", loaded.Intercept())
	}
}

func TestRegression_GobDecodeEmptyCoefficients(t *testing.T) {
	// A fitted state with no coefficients is corrupt and must be rejected,
	// not handed to the vector constructor.
	var buf bytes.Buffer
	state := regressionState{Coefficients: []float64{}, Fitted: true}
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	reg := NewRegression()
	if err := reg.GobDecode(buf.Bytes()); err == nil {
		t.Fatal("decode of fitted state without coefficients must fail")
	}
	if reg.IsFitted() {
		t.Error("failed decode must not mark the model fitted")
	}
}

func TestRegression_GobRoundTripUnfitted(t *testing.T) {
	var buf bytes.Buffer
	if err := model.SaveModelToWriter(NewRegression(), &buf); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := NewRegression()
	if err := model.LoadModelFromReader(loaded, &buf); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.IsFitted() {
		t.Error("round-tripped unfitted model must stay unfitted")
	}
	if loaded.Coefficients() != nil {
		t.Error("unfitted model must have nil coefficients")
	}
}
