package nibble

// Arithmetic runs in the int domain and truncates back to four bits. The
// overflow flag reports whether the truncation dropped significant bits,
// including the borrow of a negative difference.

func reporting(r int) (Nibble, bool) {
	return Truncate(r), r&^int(Mask) != 0
}

func (n Nibble) AddReportingOverflow(rhs Nibble) (Nibble, bool) {
	return reporting(int(n.v) + int(rhs.v))
}

func (n Nibble) SubReportingOverflow(rhs Nibble) (Nibble, bool) {
	return reporting(int(n.v) - int(rhs.v))
}

func (n Nibble) MulReportingOverflow(rhs Nibble) (Nibble, bool) {
	return reporting(int(n.v) * int(rhs.v))
}

// DivReportingOverflow divides n by rhs. Division by zero yields (0, true).
func (n Nibble) DivReportingOverflow(rhs Nibble) (Nibble, bool) {
	if rhs.v == 0 {
		return Nibble{}, true
	}
	return reporting(int(n.v) / int(rhs.v))
}

// RemReportingOverflow is the remainder counterpart of DivReportingOverflow.
func (n Nibble) RemReportingOverflow(rhs Nibble) (Nibble, bool) {
	if rhs.v == 0 {
		return Nibble{}, true
	}
	return reporting(int(n.v) % int(rhs.v))
}

// Add is the wrapping sum.
func (n Nibble) Add(rhs Nibble) Nibble {
	r, _ := n.AddReportingOverflow(rhs)
	return r
}

func (n Nibble) Sub(rhs Nibble) Nibble {
	r, _ := n.SubReportingOverflow(rhs)
	return r
}

func (n Nibble) Mul(rhs Nibble) Nibble {
	r, _ := n.MulReportingOverflow(rhs)
	return r
}

// Div returns 0 when rhs is zero instead of panicking.
func (n Nibble) Div(rhs Nibble) Nibble {
	r, _ := n.DivReportingOverflow(rhs)
	return r
}

func (n Nibble) Rem(rhs Nibble) Nibble {
	r, _ := n.RemReportingOverflow(rhs)
	return r
}

// DivFullWidth divides the 12-bit dividend high:low by n. Quotient and
// remainder are truncated to four bits.
func (n Nibble) DivFullWidth(high Nibble, low uint8) (quotient, remainder Nibble, err error) {
	if n.v == 0 {
		return Nibble{}, Nibble{}, ErrDivisionByZero
	}
	dividend := int(high.v)<<8 | int(low)
	return Truncate(dividend / int(n.v)), Truncate(dividend % int(n.v)), nil
}
