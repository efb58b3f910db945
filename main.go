// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gocas is an infix command-line calculator built on the
// kernel's expr/numeric/poly/archive packages: a small REPL in the
// shape of ivy's own main, reworked to drive this kernel's Handle
// trees instead of ivy's value.Value stack.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"gocas.dev/gocas/config"
	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
	"gocas.dev/gocas/registry"
	"gocas.dev/gocas/run"
	"gocas.dev/gocas/state"
)

var (
	execute      = flag.Bool("e", false, "execute arguments as a single expression")
	digits       = flag.Int("digits", config.DefaultDigits, "decimal digits of precision for floating-point results")
	maxRecursion = flag.Int("maxrecursion", config.DefaultMaxRecursion, "recursion bound for eval/expand/subs/diff/normal/series")
	prompt       = flag.String("prompt", "", "command prompt")
)

func init() {
	flag.Var(&debugFlag, "debug", "enable a named debug flag (e.g. cpu, panic); can be set multiple times")
}

// isTTY reports whether fd is a terminal; set to a real implementation
// by tty_unix.go's init on platforms that support the ioctl, and left
// nil (meaning "assume not a terminal") everywhere else.
var isTTY func(fd uintptr) bool

func main() {
	flag.Usage = usage
	flag.Parse()

	conf := new(config.Config)
	conf.SetDigits(*digits)
	conf.SetMaxRecursion(*maxRecursion)
	conf.SetPrompt(*prompt)
	for _, name := range debugFlag {
		conf.SetDebug(name, true)
	}

	numeric.SetConfig(conf)
	expr.SetConfig(conf)
	registry.Install()

	st := state.New(conf)

	if *execute {
		run.Run(strings.NewReader(strings.Join(flag.Args(), " ")), os.Stdout, st, false)
		return
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			if name == "-" {
				run.Run(os.Stdin, os.Stdout, st, interactive(os.Stdin))
				continue
			}
			f, err := os.Open(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "gocas: %s\n", err)
				os.Exit(1)
			}
			run.Run(bufio.NewReader(f), os.Stdout, st, false)
			f.Close()
		}
		return
	}

	run.Run(os.Stdin, os.Stdout, st, interactive(os.Stdin))
}

func interactive(f *os.File) bool {
	return isTTY != nil && isTTY(f.Fd())
}

var debugFlag multiFlag

// multiFlag allows setting a value multiple times to collect a list,
// as in -debug=cpu -debug=panic.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint(*m) }

func (m *multiFlag) Set(val string) error {
	*m = append(*m, val)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gocas [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
