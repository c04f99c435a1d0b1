// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/stackvm/asm"
	"github.com/ezrec/stackvm/emulator"
	vmio "github.com/ezrec/stackvm/io"
	"github.com/ezrec/stackvm/translate"
)

var f = translate.From

var (
	ErrDefineSyntax   = errors.New(f("define must be NAME=EXPR"))
	ErrRawUnsupported = errors.New(f("raw terminal mode is not supported"))
	ErrRawInput       = errors.New(f("raw terminal mode needs console input from stdin"))
)

// ErrReturnCode is a return code that is not a process exit status.
type ErrReturnCode int64

func (err ErrReturnCode) Error() string {
	return f("return code out of range: %v", translate.Number(int64(err)))
}

// STDIO names standard input or output in place of a file.
const STDIO = "-"

// options of a single run.
type options struct {
	verbose bool
	defines []string
	list    bool
	input   string
	output  string
	raw     bool

	stdin  io.Reader
	stdout io.Writer
	status int
}

// exitStatus maps a program return code to a process exit status.
func exitStatus(rc int64) (status int, err error) {
	if rc < 0 || rc > 255 {
		err = ErrReturnCode(rc)
		return
	}

	status = int(rc)
	return
}

// loadSources reads each path in order; STDIO reads stdin.
func loadSources(paths []string, stdin io.Reader) (sources []asm.Source, err error) {
	for _, path := range paths {
		var data []byte
		name := path
		if path == STDIO {
			name = "stdin"
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			err = errors.Wrap(err, f("failed to read file: %v", path))
			return
		}
		sources = append(sources, asm.Source{Name: name, Text: string(data)})
	}

	return
}

// predefine adds each NAME=EXPR define to the assembler.
func predefine(assembler *asm.Assembler, defines []string) (err error) {
	for _, define := range defines {
		name, expr, ok := strings.Cut(define, "=")
		if !ok {
			err = errors.Wrap(ErrDefineSyntax, define)
			return
		}
		assembler.Predefine(strings.TrimSpace(name), expr)
	}

	return
}

// checkRaw rejects --raw when the console input is not the terminal.
func (opt *options) checkRaw() (err error) {
	if opt.raw && opt.input != STDIO {
		err = ErrRawInput
	}
	return
}

// crlf returns true if console newlines must be written as "\r\n".
func (opt *options) crlf() bool {
	return opt.raw && opt.output == STDIO
}

// run assembles the sources, and either lists or executes the program.
func (opt *options) run(paths []string) (err error) {
	err = opt.checkRaw()
	if err != nil {
		return
	}

	sources, err := loadSources(paths, opt.stdin)
	if err != nil {
		return
	}

	assembler := &asm.Assembler{Verbose: opt.verbose}
	err = predefine(assembler, opt.defines)
	if err != nil {
		return
	}

	prog, err := assembler.Assemble(sources...)
	if err != nil {
		return
	}

	if opt.list {
		err = prog.Listing(opt.stdout)
		return
	}

	tape := &vmio.Tape{Crlf: opt.crlf()}

	if opt.input == STDIO {
		tape.Input = opt.stdin
		if opt.raw {
			var restore func()
			restore, err = setRawIO()
			if err != nil {
				return
			}
			atexit.Register(restore)
			defer restore()
		}
	} else {
		var inf *os.File
		inf, err = os.Open(opt.input)
		if err != nil {
			return
		}
		defer inf.Close()
		tape.Input = inf
	}

	if opt.output == STDIO {
		tape.Output = opt.stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(opt.output)
		if err != nil {
			return
		}
		defer ouf.Close()
		tape.Output = ouf
	}

	emu, err := emulator.NewExecutor(prog, tape)
	if err != nil {
		return
	}
	emu.Verbose = opt.verbose

	rc, err := emu.Run()
	if err != nil {
		return
	}

	opt.status, err = exitStatus(rc)
	return
}

// newCommand creates the command line of the stackvm tool.
func newCommand(opt *options) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "stackvm [flags] source...",
		Short: "Assemble and run stack machine programs",
		Long: `Stackvm assembles one or more source files, in order, into a single
program and runs it. The program's return code becomes the exit status.
A source of '-' is read from standard input.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opt.run(args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringArrayVarP(&opt.defines, "define", "D", nil, "Predefine a label as NAME=EXPR")
	flags.BoolVarP(&opt.list, "list", "l", false, "List the assembled program, do not execute")
	flags.StringVarP(&opt.input, "input", "i", STDIO, "Console input")
	flags.StringVarP(&opt.output, "output", "o", STDIO, "Console output")
	flags.BoolVar(&opt.raw, "raw", false, "Raw terminal mode for console input")

	return
}

func main() {
	opt := &options{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	err := newCommand(opt).Execute()
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		atexit.Exit(1)
	}

	atexit.Exit(opt.status)
}
