package encoder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fraudlens/prediction-api/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fittedClasses = []string{"CASH_IN", "CASH_OUT", "DEBIT", "PAYMENT", "TRANSFER"}

func TestEncode_CodesAreFittedOrder(t *testing.T) {
	enc, err := New(fittedClasses)
	require.NoError(t, err)

	for i, class := range fittedClasses {
		code, err := enc.Encode(class)
		assert.NoError(t, err)
		assert.Equal(t, i, code)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	enc, err := New(fittedClasses)
	require.NoError(t, err)

	first, err := enc.Encode("TRANSFER")
	require.NoError(t, err)
	second, err := enc.Encode("TRANSFER")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_UnknownCategory(t *testing.T) {
	enc, err := New(fittedClasses)
	require.NoError(t, err)

	_, err = enc.Encode("WIRE")
	require.Error(t, err)

	var appErr pkg.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkg.ErrInvalidCategoryCode, appErr.Code)
	assert.Contains(t, appErr.Message, "WIRE")
}

func TestEncode_ExactMembership(t *testing.T) {
	enc, err := New(fittedClasses)
	require.NoError(t, err)

	// No case-folding, no trimming: these must all be rejected.
	for _, category := range []string{"transfer", "Transfer", " TRANSFER", "TRANSFER "} {
		_, err := enc.Encode(category)
		assert.Error(t, err, "category %q should not match", category)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label_encoder.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"classes":["CASH_IN","CASH_OUT","DEBIT","PAYMENT","TRANSFER"]}`), 0o644))

	enc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, fittedClasses, enc.Classes())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label_encoder.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"classes":`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNew_EmptyClasses(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_DuplicateClass(t *testing.T) {
	_, err := New([]string{"TRANSFER", "TRANSFER"})
	assert.Error(t, err)
}
