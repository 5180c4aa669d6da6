// Copyright 2025 walteh LLC
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

package config

import (
	"gitlab.com/tozd/go/errors"
)

// 📚 Options is the complete run configuration, populated from the command
// line. Immutable once validated.
type Options struct {
	Path           string // Target .dtsx file or directory
	Backup         bool   // Create .bak copies before modifying
	DryRun         bool   // Report changes without writing
	Recursive      bool   // Descend into subdirectories
	Verbose        bool   // Emit per-file detail lines
	ExecutableOnly bool   // Restrict to ExecutableType/CreationName upgrades
	ClassIDOnly    bool   // Restrict to component class ID upgrades
}

// 🔍 Validate rejects inconsistent option combinations. Must pass before any
// file is touched.
func (o *Options) Validate() error {
	if o.Path == "" {
		return errors.Errorf("target path is required")
	}
	if o.ExecutableOnly && o.ClassIDOnly {
		return errors.Errorf("--executable-only and --classid-only cannot be used together")
	}
	return nil
}

// Mode describes the active upgrade mode for the startup banner.
func (o *Options) Mode() string {
	switch {
	case o.ExecutableOnly:
		return "ExecutableType/CreationName upgrades only"
	case o.ClassIDOnly:
		return "Component ClassID upgrades only"
	default:
		return "Full upgrade (ExecutableType + Component ClassID)"
	}
}
