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

// Package fib holds the command registry shared by the fib commands.
package fib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

var cmdsMu sync.Mutex
var cmds = make(map[string]Runnable)

// Register makes a command available to Run under name. It panics if name
// is already taken.
func Register(name string, r Runnable) {
	cmdsMu.Lock()
	defer cmdsMu.Unlock()
	if _, ok := cmds[name]; ok {
		panic("Register called with identical name: " + name)
	}
	cmds[name] = r
}

// Runnable is a command. It reports its own diagnostics on ctx.Stderr and
// returns an *ExitError when the process should exit non-zero.
type Runnable func(ctx Context, args ...string) error

// Context is everything a command may touch outside of its arguments.
// Stdin and the embedded context.Context belong to the contract every
// registered command shares; fib itself only writes.
type Context struct {
	context.Context
	// Dir, if set, is the directory relative paths are resolved against.
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Log returns ctx.Logger, or a logger that drops everything.
func (ctx Context) Log() *slog.Logger {
	if ctx.Logger == nil {
		return discard
	}
	return ctx.Logger
}

// ErrUnknownCommand is returned by Run for names nobody registered.
var ErrUnknownCommand = errors.New("unknown command")

// Run runs the command registered as name.
func Run(ctx Context, name string, args ...string) error {
	cmdsMu.Lock()
	fn := cmds[name]
	cmdsMu.Unlock()
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return fn(ctx, args...)
}

// ExitError carries the exit code a command wants. The diagnostic has
// already been written by the time one is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
