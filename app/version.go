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

package app

// Version of the NAS process firmware.
// Replaced by the release tooling before a firmware build is cut.
const Version = "0.1"

// Commit the process was built from.
// Set at build time with -ldflags "-X github.com/telco-stack/nas-process/app.Commit=<sha>".
var Commit = "unknown"
