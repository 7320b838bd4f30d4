package display

import (
	"io"
	"strconv"
	"strings"
)

// List is an ordered sequence of integers with an index-prefixed text form.
//
//	List{}        -> []
//	List{1, 2, 3} -> [0: 1, 1: 2, 2: 3]
type List []int

// String implements fmt.Stringer.
func (l List) String() string {
	var b strings.Builder
	// strings.Builder never fails.
	_, _ = l.WriteTo(&b)
	return b.String()
}

// WriteTo writes the text form of l to w piece by piece.
//
// It stops at the first failed write and returns it as *IoError together with the
// number of bytes written so far.
func (l List) WriteTo(w io.Writer) (int64, error) {
	var total int64

	write := func(s string) error {
		n, err := io.WriteString(w, s)
		total += int64(n)
		return ioErr("list", err)
	}

	if err := write("["); err != nil {
		return total, err
	}
	for i, v := range l {
		if i != 0 {
			if err := write(", "); err != nil {
				return total, err
			}
		}
		if err := write(strconv.Itoa(i) + ": " + strconv.Itoa(v)); err != nil {
			return total, err
		}
	}
	return total, write("]")
}
