// Package encoder maps categorical transaction types to the integer codes
// the classifier was trained against.
package encoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fraudlens/prediction-api/pkg"
)

// LabelEncoder holds the fitted category set. Codes are positional: a
// class's code is its index in the fitted order stored in the artifact, so
// encoder and model stay in agreement as long as they come from the same
// training run.
type LabelEncoder struct {
	classes []string
	codes   map[string]int
}

type artifact struct {
	Classes []string `json:"classes"`
}

// Load reads a fitted encoder artifact from disk.
func Load(path string) (*LabelEncoder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encoder artifact: %w", err)
	}
	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode encoder artifact: %w", err)
	}
	return New(a.Classes)
}

// New builds an encoder from an already-fitted class list.
func New(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, errors.New("encoder artifact has no classes")
	}
	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		if _, dup := codes[c]; dup {
			return nil, fmt.Errorf("duplicate class %q in encoder artifact", c)
		}
		codes[c] = i
	}
	return &LabelEncoder{classes: classes, codes: codes}, nil
}

// Encode returns the fitted code for category. Matching is exact, with no
// case-folding or trimming, to keep the same semantics the encoder was
// fitted with.
func (e *LabelEncoder) Encode(category string) (int, error) {
	code, ok := e.codes[category]
	if !ok {
		return 0, pkg.NewAppError(pkg.ErrInvalidCategoryCode, fmt.Sprintf("invalid transaction type: %s", category), nil)
	}
	return code, nil
}

// Classes returns the fitted class list in code order.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}
