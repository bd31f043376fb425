package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// TechnicalLevel represents the user's self-reported technical expertise.
// It only affects the register of the generated prompt, never the
// synthesized diagnosis itself.
type TechnicalLevel string

const (
	TechnicalLevelBeginner     TechnicalLevel = "beginner"
	TechnicalLevelIntermediate TechnicalLevel = "intermediate"
	TechnicalLevelAdvanced     TechnicalLevel = "advanced"
)

// Validate checks if the TechnicalLevel is valid
func (l TechnicalLevel) Validate() error {
	switch l {
	case TechnicalLevelBeginner, TechnicalLevelIntermediate, TechnicalLevelAdvanced:
		return nil
	}
	return goerr.New("invalid technical level", goerr.V("technical_level", l))
}

// String returns the string representation of TechnicalLevel
func (l TechnicalLevel) String() string {
	return string(l)
}
