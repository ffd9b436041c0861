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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFormat prints one value per line.
const DefaultFormat = "%d\n"

// Print writes the terms at indices [start, end) to w, each formatted with
// format. format must hold exactly one integer verb (see CheckFormat); ""
// means DefaultFormat. A nil w means standard output.
//
// Nothing is written if end <= start.
func Print(w io.Writer, start, end uint, format string) error {
	if end <= start {
		return nil
	}
	if format == "" {
		format = DefaultFormat
	}
	if w == nil {
		w = os.Stdout
	}

	bw := bufio.NewWriter(w)
	s := NewState()
	for s.Index < start {
		s.Advance()
	}
	for {
		if _, err := fmt.Fprintf(bw, format, s.Value); err != nil {
			return err
		}
		s.Advance()
		if s.Index >= end {
			break
		}
	}
	return bw.Flush()
}

// ErrFormat is wrapped by every error CheckFormat returns.
var ErrFormat = errors.New("invalid format")

const (
	fmtFlags = "+-# 0123456789."
	fmtVerbs = "bdoOxXcUv"
)

// CheckFormat reports whether format has exactly one verb that accepts an
// unsigned integer. "%%" is a literal percent sign.
func CheckFormat(format string) error {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for i < len(format) && strings.IndexByte(fmtFlags, format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			return fmt.Errorf("%w: %q ends in the middle of a verb", ErrFormat, format)
		}
		if strings.IndexByte(fmtVerbs, format[i]) < 0 {
			return fmt.Errorf("%w: %%%c does not print an integer", ErrFormat, format[i])
		}
		n++
	}
	if n != 1 {
		return fmt.Errorf("%w: %q has %d verbs, want 1", ErrFormat, format, n)
	}
	return nil
}
