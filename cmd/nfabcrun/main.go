// nfabcrun assembles a small textual nfabc bytecode program and runs it
// against an input string, printing the non-overlapping matches found.
//
// Usage:
//
//	nfabcrun [-d] [-n max] -s input program.nfabc
//	nfabcrun [-d] [-n max] program.nfabc < input.txt
//
// Flags are parsed manually off os.Args, following the style of uawk's
// command line tool, rather than pulling in a flags library this project
// otherwise has no use for.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coregx/nfabc"
	"github.com/coregx/nfabc/asm"
	"github.com/coregx/nfabc/trace"
)

const usage = `usage: nfabcrun [-d] [-n max] [-s input] program.nfabc

  -d          disassemble the program instead of running it
  -n max      maximum number of matches to report (default 16)
  -s input    match against input instead of reading stdin
`

func main() {
	var (
		dump     bool
		maxMatch = 16
		input    string
		haveArg  bool
		progPath string
	)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-d":
			dump = true
		case "-n":
			i++
			if i >= len(args) {
				errorExitf("flag needs an argument: -n")
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				errorExitf("invalid -n value %q: %v", args[i], err)
			}
			maxMatch = n
		case "-s":
			i++
			if i >= len(args) {
				errorExitf("flag needs an argument: -s")
			}
			input = args[i]
			haveArg = true
		case "-h", "--help":
			fmt.Print(usage)
			return
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				errorExitf("unknown flag: %s", arg)
			}
			progPath = arg
		}
	}

	if progPath == "" {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	source, err := os.ReadFile(progPath)
	if err != nil {
		errorExitf("%v", err)
	}

	prog, err := asm.Parse(string(source))
	if err != nil {
		errorExitf("%v", err)
	}

	if dump {
		fmt.Print(trace.Disassemble(prog))
		return
	}

	if !haveArg {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			errorExitf("reading stdin: %v", err)
		}
		input = string(data)
	}

	out := make([]nfabc.MatchRange, maxMatch)
	n := nfabc.FindMatches8(prog, []byte(input), 0, out)
	for i := 0; i < n; i++ {
		m := out[i]
		fmt.Printf("%d:%d\t%q\n", m.Begin, m.End, input[m.Begin:m.End])
	}
}

func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "nfabcrun: "+format+"\n", args...)
	os.Exit(1)
}
