package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querycalc/querycalc/pkg/domain"
	"github.com/querycalc/querycalc/pkg/eval"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected float64
	}{
		{"precedence", "2+2*2", 6},
		{"parens override", "(2+2)*2", 8},
		{"division", "10/4", 2.5},
		{"modulo", "10%3", 1},
		{"caret power", "2^10", 1024},
		{"double star power", "2**3", 8},
		{"power binds over multiply", "2*3^2", 18},
		{"unary minus", "-5+3", -2},
		{"unary minus in parens", "2*(-3)", -6},
		{"nested parens", "((1+2)*(3+4))", 21},
		{"decimals", "0.1+0.2", 0.3},
		{"spaces ignored", " 2 + 2 * 2 ", 6},
		{"power of negative exponent", "2^-1", 0.5},
		{"left associative power", "2^3^2", 64},
		{"mixed chain", "100-10*5+2", 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestEvaluate_NoMatch(t *testing.T) {
	queries := []string{
		"",
		"abc",
		"2+x",
		"42",      // bare number is not an expression
		"-42",     // neither is a signed one
		"3.14",
		"5 km to miles",
		"2+",      // dangling operator
		"(2+3",    // unbalanced paren
		"2+3)",    // trailing garbage
		"1/0",     // non-finite result
		"0/0",
		"()",
		"2..3+1",
	}

	for _, q := range queries {
		_, err := eval.Evaluate(q)
		assert.ErrorIs(t, err, domain.ErrNoMatch, "query %q", q)
	}
}
