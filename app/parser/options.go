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

// Option represents a single command-line option.
type Option struct {
	// Name of the option argument. When set to "option", "-option <val>" arguments will be expected.
	Name string

	// Placeholder for the option's value in the usage text. Documentation only.
	Placeholder string

	// Help message displayed to the user.
	Help string

	// Default value used if the option is not set.
	Default string

	// Value of the Option after evaluating the arguments.
	// Holds Default until a matching flag overwrites it.
	Value string
}
