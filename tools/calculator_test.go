package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func evalExpr(t *testing.T, expr string) (string, error) {
	t.Helper()
	args, _ := json.Marshal(map[string]string{"expression": expr})
	return Calculator{}.Invoke(context.Background(), args)
}

func TestCalculator(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"2+3", "5"},
		{"2+3*4", "14"},
		{"(2+3)*4", "20"},
		{"10 - 4 - 3", "3"},
		{"7/2", "3.5"},
		{"10 % 3", "1"},
		{"-5 + 3", "-2"},
		{"--4", "4"},
		{"2 * (3 + (4 - 1))", "12"},
		{"0.5 * 8", "4"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := evalExpr(t, tc.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("eval(%q) = %q, want %q", tc.expr, got, tc.want)
			}
		})
	}
}

func TestCalculatorErrors(t *testing.T) {
	exprs := []string{
		"",
		"   ",
		"2+",
		"(2+3",
		"2 ** 3",
		"1/0",
		"5 % 0",
		"abc",
		"2 3",
	}
	for _, expr := range exprs {
		t.Run(fmt.Sprintf("%q", expr), func(t *testing.T) {
			_, err := evalExpr(t, expr)
			var invalid *InvalidArgumentsError
			if !errors.As(err, &invalid) {
				t.Errorf("eval(%q): expected InvalidArgumentsError, got %v", expr, err)
			}
		})
	}
}
