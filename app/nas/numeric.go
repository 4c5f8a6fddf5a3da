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

package nas

// atodec converts the leading decimal digits of s to an integer.
// Scanning stops at the first non-digit character; a string without a
// leading digit yields 0.
func atodec(s string) int {
	result := 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c < '0' || c > '9' {
			break
		}

		result = result*10 + int(c-'0')
	}

	return result
}

// atohex converts the leading hexadecimal digits of s to an integer.
// No "0x" prefix is recognized; the trace mask is always supplied without
// one (e.g. -trace f0). Scanning is case-insensitive and stops at the first
// non-hex character; an empty or leading-invalid string yields 0.
func atohex(s string) int {
	result := 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
			result = result*16 + int(c-'0')
		case c >= 'A' && c <= 'F':
			result = result*16 + int(c-'A'+10)
		case c >= 'a' && c <= 'f':
			result = result*16 + int(c-'a'+10)
		default:
			return result
		}
	}

	return result
}
