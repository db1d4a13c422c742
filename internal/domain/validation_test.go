package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputAcceptsTwoNumbers(t *testing.T) {
	operands, err := ValidateInput([]string{"3", "5"})
	require.NoError(t, err)
	assert.Equal(t, Operands{Num1: 3, Num2: 5}, operands)
	assert.Equal(t, 8, operands.Total())
}

func TestValidateInputIgnoresExtraArguments(t *testing.T) {
	operands, err := ValidateInput([]string{"3", "5", "7", "oops"})
	require.NoError(t, err)
	assert.Equal(t, Operands{Num1: 3, Num2: 5}, operands)
}

func TestValidateInputRequiresTwoArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "none", args: nil, want: "requires two numeric arguments, got 0"},
		{name: "empty slice", args: []string{}, want: "requires two numeric arguments, got 0"},
		{name: "one", args: []string{"5"}, want: "requires two numeric arguments, got 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateInput(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.want, err.Error())
			assert.Contains(t, err.Error(), "two")
		})
	}
}

func TestValidateInputRejections(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantField string
		want      string
	}{
		{name: "negative first", args: []string{"-5", "5"}, wantField: FirstOperandField, want: "first number must be non-negative, got: -5"},
		{name: "above limit", args: []string{"1001", "0"}, wantField: FirstOperandField, want: "first number is too large (max 1000), got: 1001"},
		{name: "non numeric first", args: []string{"abc", "5"}, wantField: FirstOperandField, want: "first number must be a number, got: abc"},
		{name: "non numeric second", args: []string{"5", "xyz"}, wantField: SecondOperandField, want: "second number must be a number, got: xyz"},
		{name: "empty second", args: []string{"5", ""}, wantField: SecondOperandField, want: "missing argument: second number"},
		{name: "first error wins", args: []string{"abc", "-1"}, wantField: FirstOperandField, want: "first number must be a number, got: abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateInput(tt.args)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidateInputBoundary(t *testing.T) {
	operands, err := ValidateInput([]string{"1000", "0"})
	require.NoError(t, err)
	assert.Equal(t, 1000, operands.Num1)

	_, err = ValidateInput([]string{"1001", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")

	_, err = ValidateInput([]string{"0", "1001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second number")
}

func TestValidateInputIsIdempotent(t *testing.T) {
	for _, args := range [][]string{{"3", "5"}, {"-5", "5"}, {}} {
		first, firstErr := ValidateInput(args)
		second, secondErr := ValidateInput(args)
		assert.Equal(t, first, second)
		assert.Equal(t, firstErr, secondErr)
	}
}

func TestParseOperandLenientForms(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "0", want: 0},
		{raw: "5", want: 5},
		{raw: "100", want: 100},
		{raw: "1000", want: 1000},
		{raw: "3.5", want: 3},
		{raw: " 5 ", want: 5},
		{raw: "\t42\n", want: 42},
		{raw: "+7", want: 7},
		{raw: "-0", want: 0},
		{raw: "12abc", want: 12},
		{raw: "007", want: 7},
		{raw: "1e3", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseOperand(tt.raw, "value")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOperandFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: "missing argument: value"},
		{name: "whitespace only", raw: "   ", want: "missing argument: value"},
		{name: "letters", raw: "abc", want: "value must be a number, got: abc"},
		{name: "sign only", raw: "-", want: "value must be a number, got: -"},
		{name: "leading dot", raw: ".5", want: "value must be a number, got: .5"},
		{name: "negative", raw: "-5", want: "value must be non-negative, got: -5"},
		{name: "negative fraction truncates first", raw: "-3.9", want: "value must be non-negative, got: -3"},
		{name: "above limit", raw: "1001", want: "value is too large (max 1000), got: 1001"},
		{name: "beyond int64", raw: "99999999999999999999", want: "value is too large (max 1000), got: 99999999999999999999"},
		{name: "negative beyond int64", raw: "-99999999999999999999", want: "value must be non-negative, got: -99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOperand(tt.raw, "value")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
