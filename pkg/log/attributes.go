package log

// Standard attribute keys for regression operations. Using these keys keeps
// log output consistent and filterable across packages.
const (
	// ModelNameKey identifies the estimator type, e.g. "Regression".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "fit_simple", "predict", "score", "evaluate"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "linear", "metrics", "compare".
	ComponentKey = "ml.component"

	// SamplesKey is the number of observations (rows).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of predictors (columns).
	FeaturesKey = "data.features"

	// DatasetKey names the example dataset in use, e.g. "anscombe-II".
	DatasetKey = "data.dataset"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// RMSEKey records the root mean squared error.
	RMSEKey = "metrics.rmse"

	// MAEKey records the mean absolute error.
	MAEKey = "metrics.mae"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard attribute value constants.
const (
	OperationFit       = "fit"
	OperationFitSimple = "fit_simple"
	OperationPredict   = "predict"
	OperationScore     = "score"
	OperationEvaluate  = "evaluate"
)
