// Package testutil provides shared fixtures for pumsflow tests.
package testutil

import "github.com/srharri3/pumsflow/internal/model"

// SampleDataset returns a small decoded dataset covering every series
// kind, with one missing cell in each typed column. It is the shape
// exporters and viewers consume after formatting.
func SampleDataset() *model.Dataset {
	return model.NewDataset([]model.Series{
		model.NewFloatSeries("AGEP", []float64{25, 0, 40.5}, []bool{false, true, false}),
		model.NewStringSeries("JWAP", []string{"6:04 a.m.", "N/A", ""}, []bool{false, false, true}),
		model.NewStringSeries("SEX", []string{"Male", "Female", "Male"}, nil),
		model.NewIntSeries("Year", []int64{2021, 2021, 2022}, nil),
	})
}
