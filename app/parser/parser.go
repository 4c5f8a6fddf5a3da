// Copyright 2024 telco-stack.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package parser implements a table-driven command-line option parser.
//
// A process declares its options once as an ordered table. Every value slot
// is initialized to the option's default, so a slot is never absent: after
// resolution it holds either the default or the string supplied on the
// command line. Option indices follow declaration order and are stable
// identifiers for callers reading resolved values.
package parser

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// CommandLine represents the full option table of one process invocation.
type CommandLine struct {
	// Name of the process the table belongs to.
	Name string

	// Options in declaration order.
	Options []Option
}

// New returns a command line for the given process with every value slot
// set to its option's default.
func New(name string, options []Option) *CommandLine {
	cl := &CommandLine{
		Name:    name,
		Options: make([]Option, len(options)),
	}

	copy(cl.Options, options)

	for i := range cl.Options {
		cl.Options[i].Value = cl.Options[i].Default
	}

	return cl
}

// GetOptions matches args against the option table and copies each flag's
// value argument into the option's slot. Slots without a matching flag keep
// their default. Every flag consumes exactly one following value token;
// a repeated flag keeps the last value.
func (cl *CommandLine) GetOptions(args []string) error {
	byFlag := make(map[string]int, len(cl.Options))

	for i := range cl.Options {
		byFlag["-"+cl.Options[i].Name] = i
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if !strings.HasPrefix(arg, "-") {
			return fmt.Errorf("unexpected argument: %s", arg)
		}

		optIndex, ok := byFlag[arg]
		if !ok {
			return fmt.Errorf("unknown option: %s", arg)
		}

		i++
		if i == len(args) {
			return fmt.Errorf("value required for %s", arg)
		}

		cl.Options[optIndex].Value = args[i]
	}

	return nil
}

// Count returns the number of options in the table.
func (cl *CommandLine) Count() int {
	return len(cl.Options)
}

// Value returns the resolved value of the option at the given index.
func (cl *CommandLine) Value(index int) string {
	return cl.Options[index].Value
}

// PrintUsage renders the option table to out, one line per option in
// declaration order.
func (cl *CommandLine) PrintUsage(out io.Writer) {
	writer := tabwriter.NewWriter(out, 0, 1, 2, ' ', 0)

	for _, opt := range cl.Options {
		_, _ = fmt.Fprintf(writer, "  -%s %s\t%s\t\n", opt.Name, opt.Placeholder, opt.Help)
	}

	_ = writer.Flush()
}
