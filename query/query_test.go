package query_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() *config.Config {
	return config.New(map[string]any{
		"name": "hjarta",
		"db": map[string]any{
			"host": "localhost",
			"port": int64(5432),
		},
		"feature-flags": map[string]any{
			"beta": true,
		},
	})
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		expected   any
	}{
		{name: "comparison", expression: `db.port > 1000`, expected: true},
		{name: "string concat", expression: `name + "-config"`, expected: "hjarta-config"},
		{name: "get helper", expression: `get("db.host")`, expected: "localhost"},
		{name: "get with non-identifier key", expression: `get("feature-flags.beta", false)`, expected: true},
		{name: "get default", expression: `get("db.user", "admin")`, expected: "admin"},
		{name: "undefined variable", expression: `missing == nil`, expected: true},
		{name: "ternary", expression: `db.host == "localhost" ? "dev" : "prod"`, expected: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := query.Evaluate(sampleConfig(), tt.expression)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluate_EmptyExpression(t *testing.T) {
	t.Parallel()

	_, err := query.Evaluate(sampleConfig(), "")

	require.ErrorIs(t, err, query.ErrEmptyExpression)
}

func TestEvaluate_CompileError(t *testing.T) {
	t.Parallel()

	_, err := query.Evaluate(sampleConfig(), `db.port >`)

	var evalErr *query.EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, `db.port >`, evalErr.Expr)
	assert.Contains(t, err.Error(), `expr="db.port >"`)
}

func TestEvaluate_DoesNotMutateConfig(t *testing.T) {
	t.Parallel()

	cfg := sampleConfig()

	_, err := query.Evaluate(cfg, `get("db.port")`)
	require.NoError(t, err)

	assert.Equal(t, "fallback", cfg.Get("get", "fallback"))
}

func TestEvaluator_WithFunction(t *testing.T) {
	t.Parallel()

	upper := func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("upper expects 1 argument, got %d", len(args))
		}

		return strings.ToUpper(fmt.Sprint(args[0])), nil
	}

	evaluator := query.NewEvaluator(query.WithFunction("upper", upper))

	result, err := evaluator.Evaluate(sampleConfig(), `upper(db.host)`)
	require.NoError(t, err)
	assert.Equal(t, "LOCALHOST", result)
}

func TestEvaluator_FunctionError(t *testing.T) {
	t.Parallel()

	failure := errors.New("lookup failed")
	fail := func(_ ...any) (any, error) {
		return nil, failure
	}

	evaluator := query.NewEvaluator(query.WithFunction("fail", fail))

	_, err := evaluator.Evaluate(sampleConfig(), `fail()`)

	var evalErr *query.EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Contains(t, err.Error(), "lookup failed")
}
