package cell

// Sign is the condition flag: the sign of the last flag-setting result.
type Sign int

//go:generate go tool stringer -linecomment -type=Sign
const (
	SIGN_ZERO     = Sign(0) // z
	SIGN_NEGATIVE = Sign(1) // n
	SIGN_POSITIVE = Sign(2) // p
)

// SignOf returns the sign of value, read as a signed 16-bit integer.
func SignOf(value uint16) Sign {
	signed := int16(value)
	switch {
	case signed < 0:
		return SIGN_NEGATIVE
	case signed > 0:
		return SIGN_POSITIVE
	}
	return SIGN_ZERO
}

// updateSign sets the condition flag from the register just written.
func (cell *Cell) updateSign(reg CodeReg) {
	cell.LastSign = SignOf(cell.Reg(reg))
}
