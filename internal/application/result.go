package application

import "github.com/bnema/flowers-cli/internal/domain"

type Result struct {
	Input   domain.Operands
	Flowers []string
	Tally   domain.Tally
	Report  string
}
