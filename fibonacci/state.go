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

// Package fibonacci generates and prints bounded slices of the Fibonacci
// sequence, and registers the fib command.
package fibonacci

// State is the position of a Fibonacci sequence. Value and Next are always
// consecutive terms and Index is the position of Value, starting at 0.
//
// The zero State is not at the start of the sequence; call Init or use
// NewState.
type State struct {
	Value uint
	Next  uint
	Index uint
}

// NewState returns a State at index 0.
func NewState() State {
	var s State
	s.Init()
	return s
}

// Init resets s to index 0.
func (s *State) Init() {
	s.Value = 0
	s.Next = 1
	s.Index = 0
}

// Advance moves s one term forward. Values wrap on overflow.
func (s *State) Advance() {
	t := s.Value + s.Next
	s.Value = s.Next
	s.Next = t
	s.Index++
}
