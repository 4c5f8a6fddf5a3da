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

package log

import "log"

// Trace mask bits, one per severity. The mask is supplied on the command
// line as a hexadecimal value without "0x" prefix (e.g. -trace f enables
// all severities).
const (
	ERROR = 1 << iota
	WARNING
	INFO
	DEBUG
)

var maskPrefix = map[int]string{
	ERROR:   "[ERROR] ",
	WARNING: "[WARNING] ",
	INFO:    "[INFO] ",
	DEBUG:   "[DEBUG] ",
}

var traceMask = ERROR | WARNING

func logf(bit int, msg string, args ...any) {
	if traceMask&bit == 0 {
		return
	}

	log.Printf(maskPrefix[bit]+msg, args...)
}

// Debugf logs message with DEBUG severity.
func Debugf(msg string, args ...any) {
	logf(DEBUG, msg, args...)
}

// Infof logs message with INFO severity.
func Infof(msg string, args ...any) {
	logf(INFO, msg, args...)
}

// Warnf logs message with WARNING severity.
func Warnf(msg string, args ...any) {
	logf(WARNING, msg, args...)
}

// Errorf logs message with ERROR severity.
func Errorf(msg string, args ...any) {
	logf(ERROR, msg, args...)
}

// SetTraceMask sets the active trace mask.
func SetTraceMask(mask int) {
	traceMask = mask
}
