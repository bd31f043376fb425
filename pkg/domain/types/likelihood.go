package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Likelihood represents how probable a diagnosed cause is
type Likelihood string

const (
	LikelihoodHigh   Likelihood = "high"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodLow    Likelihood = "low"
)

// Validate checks if the Likelihood is valid
func (l Likelihood) Validate() error {
	switch l {
	case LikelihoodHigh, LikelihoodMedium, LikelihoodLow:
		return nil
	}
	return goerr.New("invalid likelihood", goerr.V("likelihood", l))
}

// Rank returns a numeric rank for sorting. Higher is more likely.
// Unknown values rank below every valid level.
func (l Likelihood) Rank() int {
	switch l {
	case LikelihoodHigh:
		return 3
	case LikelihoodMedium:
		return 2
	case LikelihoodLow:
		return 1
	}
	return 0
}

// String returns the string representation of Likelihood
func (l Likelihood) String() string {
	return string(l)
}
