package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/abstree/dataset"
)

// loadDataset reads a CSV file whose rows are nCols feature values followed
// by one trailing label column into a dataset.Dataset.
func loadDataset(path string, nCols int) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	labels := make([]string, len(rows))
	for i, row := range rows {
		if len(row) != nCols+1 {
			return nil, fmt.Errorf("dataset %s row %d: expected %d columns, got %d", path, i, nCols+1, len(row))
		}
		labels[i] = row[nCols]
	}

	ds, err := dataset.New(len(rows), nCols, labels)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		features := make([]float64, nCols)
		for j := 0; j < nCols; j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset %s row %d col %d: %w", path, i, j, err)
			}
			features[j] = v
		}
		if err := ds.SetRow(i, features); err != nil {
			return nil, err
		}
	}

	return ds, nil
}
