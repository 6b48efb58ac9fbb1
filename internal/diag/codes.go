package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Self-check
	CheckInfo             Code = 1000
	CheckViolation        Code = 1001
	CheckAliasMismatch    Code = 1002
	CheckLayoutError      Code = 1003
	CheckPanic            Code = 1004
	CheckTextualHazard    Code = 1005
	CheckCatalogueMissing Code = 1006

	// Evaluation
	EvalInfo        Code = 2000
	EvalUnknownName Code = 2001
	EvalArity       Code = 2002
	EvalOperand     Code = 2003
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	CheckInfo:             "Self-check information",
	CheckViolation:        "Property violated",
	CheckAliasMismatch:    "Alias differs from its host type",
	CheckLayoutError:      "Layout could not be computed",
	CheckPanic:            "Property panicked",
	CheckTextualHazard:    "Textual form evaluates an argument more than once",
	CheckCatalogueMissing: "Catalogue entry missing",
	EvalInfo:              "Evaluation information",
	EvalUnknownName:       "Unknown utility name",
	EvalArity:             "Wrong number of operands",
	EvalOperand:           "Invalid operand",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CHK%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("EVL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	return codeDescription[c]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
