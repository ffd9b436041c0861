/*
	Go fib -- print a slice of the Fibonacci sequence

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
	"fmt"
	"io"
	"os"
	"path/filepath"

	fib "github.com/delwink/go-fib"
	"github.com/delwink/go-fib/fibonacci/internal/sys"
	flag "github.com/spf13/pflag"
)

func init() {
	fib.Register(Name, run)
}

const Name = "fib"

const (
	Help = `Usage: fib [OPTION]...
Print the Fibonacci sequence from index START up to, but not including, END.

  -s, --start=START   start the sequence at START (default 0)
  -e, --end=END       end the sequence before END (default 10)
  -o, --output=FILE   write the sequence to FILE instead of standard output
      --format=FMT    print each value with the Go format FMT (default "%d\n")
  -h, --help          display this help and exit
  -v, --version       output version information and exit

START and END must be between 0 and 48.
`
	Version = `fib (go-fib) 1.0
License GPLv3: GNU GPL version 3 <http://gnu.org/licenses/gpl.html>.
This is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.
`
)

const (
	defaultStart = 0
	defaultEnd   = 10
)

func newCommand() *cmd {
	var c cmd
	c.f.Init(Name, flag.ContinueOnError)
	c.f.SetOutput(io.Discard)
	c.f.Usage = func() {}
	c.f.BoolVarP(&c.help, "help", "h", false, "display this help and exit")
	c.f.BoolVarP(&c.version, "version", "v", false, "output version information and exit")
	c.f.StringVarP(&c.start, "start", "s", "", "start the sequence at START")
	c.f.StringVarP(&c.end, "end", "e", "", "end the sequence before END")
	c.f.StringVarP(&c.output, "output", "o", "", "write the sequence to FILE")
	c.f.StringVar(&c.format, "format", DefaultFormat, "print each value with FMT")
	return &c
}

type cmd struct {
	f             flag.FlagSet
	help, version bool
	start, end    string
	output        string
	format        string
}

// fail writes "fib: msg" and returns the matching exit error.
func fail(ctx fib.Context, err error) error {
	fmt.Fprintf(ctx.Stderr, "%s: %v\n", Name, err)
	return &fib.ExitError{Code: 1, Err: err}
}

// usage prints Help and returns the error for exit code rc.
func usage(ctx fib.Context, rc int, err error) error {
	io.WriteString(ctx.Stderr, Help)
	if rc == 0 {
		return nil
	}
	return &fib.ExitError{Code: rc, Err: err}
}

func run(ctx fib.Context, args ...string) error {
	c := newCommand()
	log := ctx.Log()

	// Unknown options and options missing their argument end up here alike.
	if err := c.f.Parse(args); err != nil {
		fmt.Fprintf(ctx.Stderr, "%s: %v\n", Name, err)
		return usage(ctx, 1, err)
	}

	if c.help {
		return usage(ctx, 0, nil)
	}
	if c.version {
		io.WriteString(ctx.Stderr, Version)
		return nil
	}

	if c.f.NArg() > 0 {
		err := fmt.Errorf("extra operand '%s'", c.f.Arg(0))
		fmt.Fprintf(ctx.Stderr, "%s: %v\n", Name, err)
		return usage(ctx, 1, err)
	}

	start, end := uint(defaultStart), uint(defaultEnd)
	var err error
	if c.f.Changed("start") {
		if start, err = ParseIndex(c.start, MinIndex, MaxIndex, 's'); err != nil {
			return fail(ctx, err)
		}
	}
	if c.f.Changed("end") {
		if end, err = ParseIndex(c.end, MinIndex, MaxIndex, 'e'); err != nil {
			return fail(ctx, err)
		}
	}
	if err := CheckFormat(c.format); err != nil {
		return fail(ctx, err)
	}

	if !c.f.Changed("output") {
		return printSequence(ctx, ctx.Stdout, start, end, c.format)
	}

	name := c.output
	if ctx.Dir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(ctx.Dir, name)
	}
	file, err := os.Create(name)
	if err != nil {
		return fail(ctx, fmt.Errorf("could not open %s: %s", c.output, sys.Strerror(err)))
	}
	log.Debug("opened output file", "path", name)

	if err := printSequence(ctx, file, start, end, c.format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fail(ctx, fmt.Errorf("closing %s: %s", c.output, sys.Strerror(err)))
	}
	return nil
}

func printSequence(ctx fib.Context, w io.Writer, start, end uint, format string) error {
	ctx.Log().Debug("printing sequence", "start", start, "end", end, "format", format)
	if err := Print(w, start, end, format); err != nil {
		return fail(ctx, fmt.Errorf("write error: %s", sys.Strerror(err)))
	}
	return nil
}
