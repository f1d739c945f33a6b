package contract

import "math"

// Checked arithmetic for ledger amounts. Balance math never uses plain
// operators: exceeding the 64-bit range reverts the whole call instead of
// wrapping.

// checkedAdd returns a+b or reverts with the overflow symbol.
func checkedAdd(a, b Amount) Amount {
	if a > math.MaxUint64-b {
		revertWith("amount addition overflows", symOverflow)
	}
	return a + b
}

// checkedSub returns a-b or reverts with the underflow symbol.
func checkedSub(a, b Amount) Amount {
	if b > a {
		revertWith("amount subtraction underflows", symUnderflow)
	}
	return a - b
}

// checkedMul guards derived quantities like threshold multipliers.
func checkedMul(a, b Amount) Amount {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		revertWith("amount multiplication overflows", symOverflow)
	}
	return a * b
}

// checkedDiv guards against a zero divisor, which is a caller bug rather
// than a recoverable ledger condition.
func checkedDiv(a, b Amount) Amount {
	if b == 0 {
		abortMsg("division by zero")
	}
	return a / b
}
