package domain

import (
	"strconv"
	"strings"
)

const (
	MaxOperand = 1000

	FirstOperandField  = "first number"
	SecondOperandField = "second number"
)

type Operands struct {
	Num1 int
	Num2 int
}

func (o Operands) Total() int {
	return o.Num1 + o.Num2
}

// ValidateInput checks the first two positional arguments. The second one is
// only looked at once the first is valid.
func ValidateInput(args []string) (Operands, error) {
	if len(args) < 2 {
		return Operands{}, &ValidationError{
			Reason: "requires two numeric arguments, got " + strconv.Itoa(len(args)),
		}
	}

	num1, err := ParseOperand(args[0], FirstOperandField)
	if err != nil {
		return Operands{}, err
	}

	num2, err := ParseOperand(args[1], SecondOperandField)
	if err != nil {
		return Operands{}, err
	}

	return Operands{Num1: num1, Num2: num2}, nil
}

// ParseOperand reads the leading integer of raw, ignoring surrounding
// whitespace and anything after the digits, so "3.5" is 3.
func ParseOperand(raw string, field string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, invalidf(field, "missing argument: %s", field)
	}

	sign, digits := splitLeadingInteger(trimmed)
	if digits == "" {
		return 0, invalidf(field, "%s must be a number, got: %s", field, raw)
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Only a range error is possible here; the digit run is still a number.
		if sign == "-" {
			return 0, invalidf(field, "%s must be non-negative, got: -%s", field, digits)
		}
		return 0, invalidf(field, "%s is too large (max %d), got: %s", field, MaxOperand, digits)
	}

	if sign == "-" {
		value = -value
	}

	switch {
	case value < 0:
		return 0, invalidf(field, "%s must be non-negative, got: %d", field, value)
	case value > MaxOperand:
		return 0, invalidf(field, "%s is too large (max %d), got: %d", field, MaxOperand, value)
	}

	return int(value), nil
}

func splitLeadingInteger(s string) (sign string, digits string) {
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	return sign, s[:end]
}
