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

package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/telco-stack/nas-process/app/utils/assert"
)

func testOptions() []Option {
	return []Option{
		{Name: "host", Placeholder: "<host>", Help: "Hostname", Default: "localhost"},
		{Name: "port", Placeholder: "<port>", Help: "Port number", Default: "8080"},
		{Name: "dev", Placeholder: "<devpath>", Help: "Device pathname", Default: "NULL"},
	}
}

func TestNewSetsDefaults(t *testing.T) {
	cl := New("test-process", testOptions())

	assert.Equal(t, cl.Count(), 3)
	assert.Equal(t, cl.Value(0), "localhost")
	assert.Equal(t, cl.Value(1), "8080")
	assert.Equal(t, cl.Value(2), "NULL")
}

func TestGetOptions(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedError  string
		expectedValues []string
	}{
		{
			name:           "no arguments keeps defaults",
			args:           nil,
			expectedValues: []string{"localhost", "8080", "NULL"},
		},
		{
			name:           "matched flags overwrite their slots only",
			args:           []string{"-port", "9000"},
			expectedValues: []string{"localhost", "9000", "NULL"},
		},
		{
			name:           "all flags matched",
			args:           []string{"-host", "10.0.0.1", "-port", "9000", "-dev", "/dev/tun0"},
			expectedValues: []string{"10.0.0.1", "9000", "/dev/tun0"},
		},
		{
			name:           "repeated flag keeps the last value",
			args:           []string{"-port", "9000", "-port", "9001"},
			expectedValues: []string{"localhost", "9001", "NULL"},
		},
		{
			name:          "unknown option",
			args:          []string{"-bogus", "1"},
			expectedError: "unknown option: -bogus",
		},
		{
			name:          "missing value token",
			args:          []string{"-host"},
			expectedError: "value required for -host",
		},
		{
			name:          "bare argument",
			args:          []string{"host"},
			expectedError: "unexpected argument: host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := New("test-process", testOptions())

			err := cl.GetOptions(tt.args)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)

			for i, expected := range tt.expectedValues {
				assert.Equal(t, cl.Value(i), expected)
			}
		})
	}
}

func TestGetOptionsDoesNotMutateDefaults(t *testing.T) {
	options := testOptions()
	cl := New("test-process", options)

	assert.NoError(t, cl.GetOptions([]string{"-host", "10.0.0.1"}))

	// the caller's descriptor slice must stay untouched
	assert.Equal(t, options[0].Value, "")
	assert.Equal(t, cl.Options[0].Default, "localhost")
}

func TestPrintUsage(t *testing.T) {
	cl := New("test-process", testOptions())

	var out bytes.Buffer
	cl.PrintUsage(&out)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Length(t, lines, cl.Count())

	// declaration order is preserved
	for i, opt := range cl.Options {
		if !strings.Contains(lines[i], "-"+opt.Name) {
			t.Fatalf("line %d does not mention -%s: %q", i, opt.Name, lines[i])
		}

		if !strings.Contains(lines[i], opt.Placeholder) {
			t.Fatalf("line %d does not mention %s: %q", i, opt.Placeholder, lines[i])
		}

		if !strings.Contains(lines[i], opt.Help) {
			t.Fatalf("line %d does not mention %q: %q", i, opt.Help, lines[i])
		}
	}
}
