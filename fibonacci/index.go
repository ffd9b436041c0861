/*
	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License version 3 as
	published by the Free Software Foundation.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package fibonacci

import (
	"errors"
	"fmt"
	"strconv"
)

// Bounds accepted by the fib command. END is exclusive, so the largest term
// printed is F(47), which still fits in 32 bits.
const (
	MinIndex = 0
	MaxIndex = 48
)

var (
	ErrNotNumber  = errors.New("not a number")
	ErrOutOfRange = errors.New("out of range")
)

// IndexError describes a rejected index argument.
type IndexError struct {
	Flag         byte // short option the argument belongs to
	Lower, Upper int
	Err          error // ErrNotNumber or ErrOutOfRange
}

func (e *IndexError) Error() string {
	if e.Err == ErrOutOfRange {
		return fmt.Sprintf("argument to -%c must be between %d and %d", e.Flag, e.Lower, e.Upper)
	}
	return fmt.Sprintf("argument to -%c must be a number", e.Flag)
}

func (e *IndexError) Unwrap() error { return e.Err }

// ParseIndex parses s as an index in [lower, upper]. flag names the option
// s was given to, for the error message.
func ParseIndex(s string, lower, upper int, flag byte) (uint, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		e := &IndexError{Flag: flag, Lower: lower, Upper: upper, Err: ErrNotNumber}
		if errors.Is(err, strconv.ErrRange) {
			e.Err = ErrOutOfRange
		}
		return 0, e
	}
	if n < lower || n > upper {
		return 0, &IndexError{Flag: flag, Lower: lower, Upper: upper, Err: ErrOutOfRange}
	}
	return uint(n), nil
}
