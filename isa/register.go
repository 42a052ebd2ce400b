package isa

import (
	"strconv"
)

// Register is a general purpose register index.
type Register uint8

// REGISTER_COUNT is the number of addressable registers, R0 to R15.
const REGISTER_COUNT = 16

func (reg Register) String() string {
	return "R" + strconv.Itoa(int(reg))
}

// ParseRegister parses an `R` followed by one or two decimal digits.
func ParseRegister(token string) (reg Register, err error) {
	if len(token) < 2 || len(token) > 3 || token[0] != 'R' {
		err = ErrOperand{Token: token, Err: ErrOperandMalformed}
		return
	}

	value := 0
	for _, c := range token[1:] {
		if c < '0' || c > '9' {
			err = ErrOperand{Token: token, Err: ErrOperandMalformed}
			return
		}
		value = value*10 + int(c-'0')
	}

	if value >= REGISTER_COUNT {
		err = ErrOperand{Token: token, Err: ErrRegisterRange}
		return
	}

	reg = Register(value)
	return
}

// ParseImmediate parses an unsigned decimal 16-bit literal.
func ParseImmediate(token string) (value uint16, err error) {
	if len(token) == 0 {
		err = ErrOperand{Token: token, Err: ErrOperandMalformed}
		return
	}

	for _, c := range token {
		if c < '0' || c > '9' {
			err = ErrOperand{Token: token, Err: ErrOperandMalformed}
			return
		}
	}

	v64, err := strconv.ParseUint(token, 10, IMM16_BITS)
	if err != nil {
		// Only digits remain, so the failure is the range.
		err = ErrOperand{Token: token, Err: ErrImmediateRange}
		return
	}

	value = uint16(v64)
	return
}
