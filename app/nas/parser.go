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

// Package nas defines the command-line options of the NAS process and typed
// accessors over their resolved values.
//
// The table is built once at process start, resolved exactly once against
// the argument list and read-only afterwards.
package nas

import (
	"fmt"
	"io"

	"github.com/telco-stack/nas-process/app/parser"
)

// Identifiers of the NAS command-line options, in declaration order.
const (
	// OptionUEID is the UE identifier.
	OptionUEID = iota

	// OptionTraceLevel is the logging trace level.
	OptionTraceLevel

	// OptionUserHost is the user application layer's hostname.
	OptionUserHost

	// OptionNetworkHost is the network layer's hostname.
	OptionNetworkHost

	// OptionUserPort is the user application layer's port number.
	OptionUserPort

	// OptionNetworkPort is the network layer's port number.
	OptionNetworkPort

	// OptionDevicePath is the device pathname.
	OptionDevicePath

	// OptionDeviceParams holds the device attribute parameters.
	OptionDeviceParams

	optionCount
)

// NoValue is the default recorded for options without a build-configured
// default. It is a literal sentinel kept for compatibility with the usage
// text and the raw accessors; callers check against it to detect an unset
// option.
const NoValue = "NULL"

// Build-configured option defaults. Release builds override these with
// -ldflags "-X github.com/telco-stack/nas-process/app/nas.DefaultNetworkHost=...".
var (
	DefaultUEID        = "0"
	DefaultTraceLevel  = "0"
	DefaultNetworkHost = "localhost"
	DefaultUserPort    = "10000"
	DefaultNetworkPort = "12000"
)

// Parser resolves and exposes the command-line options of the NAS process.
type Parser struct {
	commandLine *parser.CommandLine
}

// NewParser returns the NAS option table with every slot at its default.
func NewParser(processName string) *Parser {
	return &Parser{
		commandLine: parser.New(processName, []parser.Option{
			{
				Name:        "ueid",
				Placeholder: "<ueid>",
				Help:        "UE identifier",
				Default:     DefaultUEID,
			},
			{
				Name:        "trace",
				Placeholder: "<mask>",
				Help:        "Logging trace level",
				Default:     DefaultTraceLevel,
			},
			{
				Name:        "uhost",
				Placeholder: "<uhost>",
				Help:        "User app layer's hostname",
				Default:     NoValue,
			},
			{
				Name:        "nhost",
				Placeholder: "<nhost>",
				Help:        "Network layer's hostname",
				Default:     DefaultNetworkHost,
			},
			{
				Name:        "uport",
				Placeholder: "<uport>",
				Help:        "User app layer's port number",
				Default:     DefaultUserPort,
			},
			{
				Name:        "nport",
				Placeholder: "<nport>",
				Help:        "Network layer's port number",
				Default:     DefaultNetworkPort,
			},
			{
				Name:        "dev",
				Placeholder: "<devpath>",
				Help:        "Device pathname",
				Default:     NoValue,
			},
			{
				Name:        "params",
				Placeholder: "<params>",
				Help:        "Device attribute parameters",
				Default:     NoValue,
			},
		}),
	}
}

// GetOptions resolves the process arguments against the option table.
// Slots without a matching flag keep their default.
func (p *Parser) GetOptions(args []string) error {
	return p.commandLine.GetOptions(args)
}

// OptionCount returns the number of NAS command-line options.
func (p *Parser) OptionCount() int {
	return p.commandLine.Count()
}

// PrintUsage renders the option table and the firmware version to out.
func (p *Parser) PrintUsage(out io.Writer, version string) {
	p.commandLine.PrintUsage(out)
	_, _ = fmt.Fprintf(out, "Version: %s\n", version)
}

// UEID returns the UE identifier.
func (p *Parser) UEID() int {
	return atodec(p.commandLine.Value(OptionUEID))
}

// TraceLevel returns the logging trace mask.
func (p *Parser) TraceLevel() int {
	return atohex(p.commandLine.Value(OptionTraceLevel))
}

// UserHost returns the user application layer's hostname.
func (p *Parser) UserHost() string {
	return p.commandLine.Value(OptionUserHost)
}

// NetworkHost returns the network layer's hostname.
func (p *Parser) NetworkHost() string {
	return p.commandLine.Value(OptionNetworkHost)
}

// UserPort returns the user application layer's port number.
func (p *Parser) UserPort() string {
	return p.commandLine.Value(OptionUserPort)
}

// NetworkPort returns the network layer's port number.
func (p *Parser) NetworkPort() string {
	return p.commandLine.Value(OptionNetworkPort)
}

// DevicePath returns the device pathname.
func (p *Parser) DevicePath() string {
	return p.commandLine.Value(OptionDevicePath)
}

// DeviceParams returns the device attribute parameters.
func (p *Parser) DeviceParams() string {
	return p.commandLine.Value(OptionDeviceParams)
}
