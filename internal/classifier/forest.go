package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// node is one decision point in a tree. Leaf nodes carry the class
// distribution [normal, fraud] observed during training.
type node struct {
	Leaf      bool       `json:"leaf"`
	Feature   int        `json:"feature,omitempty"`
	Threshold float64    `json:"threshold,omitempty"`
	Left      int        `json:"left,omitempty"`
	Right     int        `json:"right,omitempty"`
	Value     [2]float64 `json:"value,omitempty"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// Metadata describes how the persisted model was trained.
type Metadata struct {
	Algorithm    string             `json:"algorithm"`
	Features     []string           `json:"features"`
	TrainingDate string             `json:"training_date"`
	DatasetSize  string             `json:"dataset_size"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Forest is a binary random-forest classifier decoded from a persisted
// artifact. Prediction averages the leaf distributions of every tree. A
// loaded forest is read-only and safe for concurrent use.
type Forest struct {
	Meta        Metadata `json:"metadata"`
	NumFeatures int      `json:"num_features"`
	Trees       []tree   `json:"trees"`
}

var _ Classifier = (*Forest)(nil)

// LoadForest reads a model artifact from disk and checks its structure. Any
// failure here is fatal to the caller: a process without a model must not
// serve predictions.
func LoadForest(path string) (*Forest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var f Forest
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if f.NumFeatures <= 0 {
		return nil, errors.New("model artifact missing num_features")
	}
	if len(f.Trees) == 0 {
		return nil, errors.New("model artifact has no trees")
	}
	for ti := range f.Trees {
		t := &f.Trees[ti]
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.Leaf {
				continue
			}
			if n.Feature < 0 || n.Feature >= f.NumFeatures {
				return nil, fmt.Errorf("tree %d node %d references unknown feature %d", ti, ni, n.Feature)
			}
			// Children must come after their parent; this also rules out cycles.
			if n.Left <= ni || n.Left >= len(t.Nodes) || n.Right <= ni || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("tree %d node %d has out-of-range children", ti, ni)
			}
		}
	}
	return &f, nil
}

// PredictProbabilities averages the leaf distributions across all trees.
func (f *Forest) PredictProbabilities(features []float64) (Probabilities, error) {
	if len(features) != f.NumFeatures {
		return Probabilities{}, fmt.Errorf("feature vector has %d values, model expects %d", len(features), f.NumFeatures)
	}
	var normal, fraud float64
	for i := range f.Trees {
		v := f.Trees[i].classify(features)
		normal += v[0]
		fraud += v[1]
	}
	total := normal + fraud
	if total == 0 {
		return Probabilities{}, errors.New("model produced an empty class distribution")
	}
	return Probabilities{Normal: normal / total, Fraud: fraud / total}, nil
}

// PredictLabel returns 1 when fraud is the more probable class. Ties resolve
// to the normal class, matching the training-side argmax.
func (f *Forest) PredictLabel(features []float64) (int, error) {
	p, err := f.PredictProbabilities(features)
	if err != nil {
		return 0, err
	}
	if p.Fraud > p.Normal {
		return 1, nil
	}
	return 0, nil
}

func (t *tree) classify(features []float64) [2]float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
