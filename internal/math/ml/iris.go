package ml

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/sjwhitworth/golearn/base"
)

// irisCSV is the UCI iris dataset, one sample per line
//
//	5.1,3.5,1.4,0.2,Iris-setosa
//	4.9,3.0,1.4,0.2,Iris-setosa
//	...
//
//go:embed data/iris.csv
var irisCSV []byte

var irisFeatures = []string{"sepal length (cm)", "sepal width (cm)", "petal length (cm)", "petal width (cm)"}

// LoadIris loads the bundled 150 sample iris dataset.
func LoadIris() (Dataset, error) {
	return ParseCSV(irisCSV, irisFeatures)
}

// ParseCSV parses a header-less csv where the last column holds the class.
// Classes get their integer label in order of first appearance.
func ParseCSV(data []byte, names []string) (Dataset, error) {
	instances, err := base.ParseCSVToInstancesFromReader(bytes.NewReader(data), false)
	if err != nil {
		return Dataset{}, fmt.Errorf("could not parse csv: %s: %w", err.Error(), ErrDatasetUnavailable)
	}
	return FromInstances(instances, names)
}

// FromInstances converts a golearn grid with float features into a Dataset.
func FromInstances(instances base.FixedDataGrid, names []string) (Dataset, error) {
	attrs := base.NonClassFloatAttributes(instances)
	if len(attrs) == 0 {
		return Dataset{}, fmt.Errorf("no float attributes: %w", ErrDatasetUnavailable)
	}
	if len(instances.AllClassAttributes()) != 1 {
		return Dataset{}, fmt.Errorf("expected exactly one class attribute: %w", ErrDatasetUnavailable)
	}
	specs := base.ResolveAttributes(instances, attrs)
	_, rows := instances.Size()

	ds := Dataset{
		Features:     make([][]float64, rows),
		Labels:       make([]int, rows),
		FeatureNames: make([]string, len(attrs)),
	}
	for j, a := range attrs {
		ds.FeatureNames[j] = a.GetName()
		if j < len(names) {
			ds.FeatureNames[j] = names[j]
		}
	}

	classes := make(map[string]int)
	for i := 0; i < rows; i++ {
		row := make([]float64, len(specs))
		for j, spec := range specs {
			row[j] = base.UnpackBytesToFloat(instances.Get(spec, i))
		}
		ds.Features[i] = row

		class := base.GetClass(instances, i)
		label, ok := classes[class]
		if !ok {
			label = len(ds.ClassNames)
			classes[class] = label
			ds.ClassNames = append(ds.ClassNames, class)
		}
		ds.Labels[i] = label
	}
	if rows == 0 {
		return Dataset{}, fmt.Errorf("no samples: %w", ErrDatasetUnavailable)
	}
	return ds, nil
}
