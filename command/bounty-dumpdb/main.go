// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	flag "github.com/spf13/pflag"

	"github.com/bitmark-inc/bountyd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := filepath.Base(os.Args[0])
	flags := flag.NewFlagSet(program, flag.ContinueOnError)

	file := flags.StringP("file", "f", "", "LevelDB directory to read")
	format := flags.StringP("format", "F", formatJSON, "output format: json or cbor")
	output := flags.StringP("output", "o", "-", "output file, - for stdout")
	compress := flags.BoolP("zstd", "z", false, "compress the output with zstd")
	raw := flags.BoolP("raw", "r", false, "do not decode values")
	pools := flags.StringSliceP("pool", "p", nil, "only dump the named pools (repeatable)")
	list := flags.BoolP("list", "l", false, "list the pool names and exit")
	verbose := flags.BoolP("verbose", "v", false, "report progress on stderr")
	showVersion := flags.BoolP("version", "V", false, "display the version")

	err := flags.Parse(os.Args[1:])
	if flag.ErrHelp == err {
		return
	}
	if nil != err {
		exitwithstatus.Message("%s: flag error: %s", program, err)
	}

	if *showVersion {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if *list {
		fmt.Printf(" pools:\n")
		for _, p := range storage.AllPools() {
			fmt.Printf("       %s\n", p.Name)
		}
		return
	}

	if "" == *file {
		exitwithstatus.Message("usage: %s --file=FILE [--format=json|cbor] [--zstd] [--output=FILE] [--pool=NAME...]", program)
	}
	if formatJSON != *format && formatCBOR != *format {
		exitwithstatus.Message("%s: unsupported format: %q", program, *format)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "bounty-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	err = storage.Initialise(*file, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	selected, err := selectPools(storage.AllPools(), *pools)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	result, err := collect(selected, !*raw)
	if nil != err {
		exitwithstatus.Message("%s: read error: %s", program, err)
	}

	if *verbose {
		for _, p := range result {
			fmt.Fprintf(os.Stderr, "%s: %d entries\n", p.Name, len(p.Entries))
		}
	}

	var w io.Writer = os.Stdout
	if "-" != *output {
		f, err := os.Create(*output)
		if nil != err {
			exitwithstatus.Message("%s: create: %q error: %s", program, *output, err)
		}
		defer f.Close()
		w = f
	}

	err = write(w, result, *format, *compress)
	if nil != err {
		exitwithstatus.Message("%s: write error: %s", program, err)
	}
}
