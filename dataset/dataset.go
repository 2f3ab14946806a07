package dataset

import "fmt"

// Dataset is a row-major nRows × nCols matrix of real features, stored in a
// flat backing slice for cache-friendly row access, paired with a parallel
// array of reference-sample label strings (spec.md §6: "a dataset: row-major
// n_rows × n_cols of real features plus a parallel array of fixed-width
// label strings").
type Dataset struct {
	nRows, nCols int
	data         []float64 // length nRows*nCols, row-major
	labels       []string  // length nRows
}

// New allocates an nRows × nCols dataset initialized to zero features, with
// labels copied in. len(labels) must equal nRows.
func New(nRows, nCols int, labels []string) (*Dataset, error) {
	if nRows <= 0 || nCols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(labels) != nRows {
		return nil, ErrLabelCountMismatch
	}
	labelsCopy := make([]string, nRows)
	copy(labelsCopy, labels)

	return &Dataset{nRows: nRows, nCols: nCols, data: make([]float64, nRows*nCols), labels: labelsCopy}, nil
}

// NRows returns the number of samples.
func (d *Dataset) NRows() int { return d.nRows }

// NCols returns the feature-space dimensionality.
func (d *Dataset) NCols() int { return d.nCols }

func (d *Dataset) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.nRows {
		return 0, fmt.Errorf("dataset.indexOf(%d,%d): %w", row, col, ErrRowIndexOutOfRange)
	}
	if col < 0 || col >= d.nCols {
		return 0, fmt.Errorf("dataset.indexOf(%d,%d): %w", row, col, ErrFeatureCountMismatch)
	}

	return row*d.nCols + col, nil
}

// At returns feature col of row.
func (d *Dataset) At(row, col int) (float64, error) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// SetRow overwrites row's feature vector in place. len(features) must
// equal NCols().
func (d *Dataset) SetRow(row int, features []float64) error {
	if row < 0 || row >= d.nRows {
		return ErrRowIndexOutOfRange
	}
	if len(features) != d.nCols {
		return ErrFeatureCountMismatch
	}
	copy(d.data[row*d.nCols:(row+1)*d.nCols], features)

	return nil
}

// Row returns a copy of row's feature vector, suitable for passing directly
// to Classify/Stability.
func (d *Dataset) Row(row int) ([]float64, error) {
	if row < 0 || row >= d.nRows {
		return nil, ErrRowIndexOutOfRange
	}
	out := make([]float64, d.nCols)
	copy(out, d.data[row*d.nCols:(row+1)*d.nCols])

	return out, nil
}

// Label returns row's reference label string.
func (d *Dataset) Label(row int) (string, error) {
	if row < 0 || row >= d.nRows {
		return "", ErrRowIndexOutOfRange
	}

	return d.labels[row], nil
}
