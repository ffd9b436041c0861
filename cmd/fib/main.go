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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	fib "github.com/delwink/go-fib"
	"github.com/delwink/go-fib/fibonacci"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	ctx := fib.Context{
		Context: context.Background(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
	}
	os.Exit(run(ctx, os.Args[1:]))
}

// run executes the fib command and returns the process exit code.
func run(ctx fib.Context, args []string) int {
	err := fib.Run(ctx, fibonacci.Name, args...)
	if err == nil {
		return 0
	}
	var ee *fib.ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	stderr := ctx.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	fmt.Fprintf(stderr, "%s: %v\n", fibonacci.Name, err)
	return 1
}
