// Package assembler validates raw prediction payloads and builds the
// feature vector the classifier consumes.
package assembler

import (
	"fmt"

	"github.com/fraudlens/prediction-api/internal/encoder"
	"github.com/fraudlens/prediction-api/pkg"
	"github.com/fraudlens/prediction-api/pkg/utils"
)

// requiredFields is checked in order; the first absent field fails the
// request.
var requiredFields = []string{
	"type",
	"amount",
	"oldbalanceOrg",
	"newbalanceOrig",
	"oldbalanceDest",
	"newbalanceDest",
	"step",
}

// Transaction holds the normalized scalar fields of a validated payload.
type Transaction struct {
	Step           int
	Type           string
	Amount         float64
	OldBalanceOrg  float64
	NewBalanceOrig float64
	OldBalanceDest float64
	NewBalanceDest float64
	Currency       string
}

type Assembler struct {
	enc *encoder.LabelEncoder
}

func New(enc *encoder.LabelEncoder) *Assembler {
	return &Assembler{enc: enc}
}

// Assemble validates payload and produces the feature vector
// [step, type, amount, oldbalanceOrg, newbalanceOrig, oldbalanceDest,
// newbalanceDest]. The order is load-bearing: the model was trained against
// it and reordering silently corrupts predictions.
//
// Validation runs in three stages: presence of every required field,
// category validity, then numeric coercion. Negative and zero amounts pass
// through untouched; fraud signals can live in edge-case values.
func (a *Assembler) Assemble(payload map[string]any) (*Transaction, []float64, error) {
	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			return nil, nil, pkg.NewAppError(pkg.ErrMissingFieldCode, fmt.Sprintf("missing required field: %s", field), nil)
		}
	}

	rawType, ok := payload["type"].(string)
	if !ok {
		rawType = fmt.Sprint(payload["type"])
	}
	code, err := a.enc.Encode(rawType)
	if err != nil {
		return nil, nil, err
	}

	step, ok := utils.ToInt(payload["step"])
	if !ok {
		return nil, nil, invalidNumeric("step", payload["step"])
	}

	tx := &Transaction{Step: step, Type: rawType, Currency: pkg.DefaultCurrency}
	if c, ok := payload["currency"].(string); ok && !utils.IsEmpty(c) {
		tx.Currency = c
	}

	monetary := []struct {
		name string
		dst  *float64
	}{
		{"amount", &tx.Amount},
		{"oldbalanceOrg", &tx.OldBalanceOrg},
		{"newbalanceOrig", &tx.NewBalanceOrig},
		{"oldbalanceDest", &tx.OldBalanceDest},
		{"newbalanceDest", &tx.NewBalanceDest},
	}
	for _, m := range monetary {
		v, ok := utils.ToFloat(payload[m.name])
		if !ok {
			return nil, nil, invalidNumeric(m.name, payload[m.name])
		}
		*m.dst = v
	}

	features := []float64{
		float64(tx.Step),
		float64(code),
		tx.Amount,
		tx.OldBalanceOrg,
		tx.NewBalanceOrig,
		tx.OldBalanceDest,
		tx.NewBalanceDest,
	}
	return tx, features, nil
}

func invalidNumeric(field string, raw any) error {
	return pkg.NewAppError(pkg.ErrInvalidNumericCode, fmt.Sprintf("invalid numeric value for %s: %v", field, raw), nil)
}
