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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/telco-stack/nas-process/app"
	"github.com/telco-stack/nas-process/app/log"
	"github.com/telco-stack/nas-process/app/nas"
)

const failureExitCode = 1

func main() {
	options := nas.NewParser(filepath.Base(os.Args[0]))

	if err := options.GetOptions(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		options.PrintUsage(os.Stderr, app.Version)
		os.Exit(failureExitCode)
	}

	log.SetTraceMask(options.TraceLevel())

	log.Infof("NAS process %s (commit: %s)", app.Version, app.Commit)
	log.Infof("UE identifier: %d", options.UEID())
	log.Infof("network endpoint: %s:%s", options.NetworkHost(), options.NetworkPort())

	if options.UserHost() != nas.NoValue {
		log.Infof("user endpoint: %s:%s", options.UserHost(), options.UserPort())
	}

	if options.DevicePath() != nas.NoValue {
		if options.DeviceParams() != nas.NoValue {
			log.Infof("device: %s (%s)", options.DevicePath(), options.DeviceParams())
		} else {
			log.Infof("device: %s", options.DevicePath())
		}
	}
}
