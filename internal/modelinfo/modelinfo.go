// Package modelinfo describes the simulated classifier shown on the model
// card. The numbers are illustrative; predictions come from the scoring
// bands, not from these models.
package modelinfo

import (
	"cmp"
	"slices"
)

// Metrics are evaluation figures for one model.
type Metrics struct {
	Name      string
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Feature is one input's relative importance.
type Feature struct {
	Name       string
	Importance float64
}

var models = []Metrics{
	{Name: "random-forest", Accuracy: 0.948, Precision: 0.923, Recall: 0.917, F1: 0.920},
	{Name: "svm", Accuracy: 0.932, Precision: 0.915, Recall: 0.901, F1: 0.908},
}

var features = []Feature{
	{"Sleep Quality", 0.18},
	{"Worry", 0.15},
	{"Depressed Mood", 0.14},
	{"Energy Level", 0.12},
	{"Concentration", 0.11},
	{"Interest in Activities", 0.10},
	{"Irritability", 0.09},
	{"Appetite", 0.07},
	{"Self-Esteem", 0.04},
}

// Models returns the metrics of every model.
func Models() []Metrics {
	return slices.Clone(models)
}

// BestModel returns the model with the highest F1 score.
func BestModel() Metrics {
	return slices.MaxFunc(models, func(a, b Metrics) int {
		return cmp.Compare(a.F1, b.F1)
	})
}

// FeatureImportances returns features sorted by importance, highest first.
func FeatureImportances() []Feature {
	out := slices.Clone(features)
	slices.SortStableFunc(out, func(a, b Feature) int {
		return cmp.Compare(b.Importance, a.Importance)
	})
	return out
}
