package forest

import (
	"math"

	"github.com/katalvlaran/abstree/tree"
)

// voteConcrete walks every member tree on x and returns the voted score
// vector according to f.scheme, all trees fixed (no abstraction).
func (f *Forest) voteConcrete(x []float64) ([]float64, error) {
	switch f.scheme {
	case Max:
		return f.voteMaxConcrete(x)
	case Average:
		return f.voteAverageConcrete(x)
	case SoftArgmax:
		return f.voteSoftArgmaxConcrete(x)
	default:
		return nil, ErrUnknownVotingScheme
	}
}

func (f *Forest) voteMaxConcrete(x []float64) ([]float64, error) {
	scores := make([]float64, f.K())
	for _, tr := range f.trees {
		set, err := tr.Classify(x)
		if err != nil {
			return nil, err
		}
		for i := 0; i < f.K(); i++ {
			if set.Contains(i) {
				scores[i]++
			}
		}
	}

	return scores, nil
}

func (f *Forest) voteAverageConcrete(x []float64) ([]float64, error) {
	scores := make([]float64, f.K())
	for _, tr := range f.trees {
		df, err := tr.DecisionFunction(x)
		if err != nil {
			return nil, err
		}
		for i, v := range df {
			scores[i] += v
		}
	}
	for i := range scores {
		scores[i] /= float64(f.T())
	}

	return scores, nil
}

func (f *Forest) voteSoftArgmaxConcrete(x []float64) ([]float64, error) {
	sumLog := make([]float64, f.K())
	for _, tr := range f.trees {
		df, err := tr.DecisionFunction(x)
		if err != nil {
			return nil, err
		}
		for i, v := range df {
			sumLog[i] += v
		}
	}

	return softmax(sumLog), nil
}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}
	exp := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		e := math.Exp(l - max)
		exp[i] = e
		sum += e
	}
	for i := range exp {
		exp[i] /= sum
	}

	return exp
}

// Classify returns the set of labels tying for the forest's maximum voted
// score on concrete sample x (spec.md §4.3).
func (f *Forest) Classify(x []float64) (*tree.LabelSet, error) {
	if len(x) != f.n {
		return nil, ErrDimensionMismatch
	}
	scores, err := f.voteConcrete(x)
	if err != nil {
		return nil, err
	}

	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	set := tree.NewLabelSet(f.K())
	for i, s := range scores {
		if s == max {
			set.Add(i)
		}
	}

	return set, nil
}

// DecisionFunction returns the forest's voted score vector for x.
func (f *Forest) DecisionFunction(x []float64) ([]float64, error) {
	if len(x) != f.n {
		return nil, ErrDimensionMismatch
	}

	return f.voteConcrete(x)
}
