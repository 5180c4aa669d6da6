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

package upgrade

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is the result classification for one processed file.
type Outcome int

const (
	OutcomeUnchanged   Outcome = iota // no qualifying attributes, nothing written
	OutcomeModified                   // content rewritten in place
	OutcomeWouldModify                // dry run, changes computed but not written
	OutcomeError                      // read/write/decoding failure
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeModified:
		return "modified"
	case OutcomeWouldModify:
		return "would-modify"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileOutcome reports what happened to a single package file.
type FileOutcome struct {
	Path                   string  // File path as enumerated
	Outcome                Outcome // Result classification
	ExecutableReplacements int     // ExecutableType/CreationName attributes rewritten
	ClassIDReplacements    int     // componentClassID attributes rewritten
	Err                    error   // Set when Outcome is OutcomeError
}

// TotalReplacements is the combined count across both categories.
func (fo FileOutcome) TotalReplacements() int {
	return fo.ExecutableReplacements + fo.ClassIDReplacements
}

// 🔧 Processor upgrades individual package files using the shared Engine.
// Per-file failures are reported in the outcome, never as an abort.
type Processor struct {
	engine *Engine
	opts   config.Options
	ui     *log.UserLogger
}

// 🏭 NewProcessor creates a processor for the given run options.
func NewProcessor(opts config.Options, ui *log.UserLogger) *Processor {
	return &Processor{
		engine: NewEngine(),
		opts:   opts,
		ui:     ui,
	}
}

// 🔄 Process upgrades one file. Categories run in fixed order (executable
// types first, then component class IDs), restricted by the run options.
// Content is written back only when it actually changed and dry run is off.
func (p *Processor) Process(ctx context.Context, path string) FileOutcome {
	zlog := zerolog.Ctx(ctx)
	p.ui.Processing(path)

	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Outcome = OutcomeError
		outcome.Err = errors.Errorf("reading file: %w", err)
		p.ui.Errorf("error processing %s: %v", path, err)
		return outcome
	}
	if !utf8.Valid(data) {
		outcome.Outcome = OutcomeError
		outcome.Err = errors.Errorf("reading file: content is not valid UTF-8")
		p.ui.Errorf("error processing %s: content is not valid UTF-8", path)
		return outcome
	}

	original := string(data)
	content := original

	if !p.opts.ClassIDOnly {
		var n int
		content, n = p.engine.SimplifyExecutableTypes(content)
		outcome.ExecutableReplacements = n
		if n > 0 {
			p.ui.Detailf("found %d ExecutableType/CreationName attribute(s) to simplify", n)
		}
	}

	if !p.opts.ExecutableOnly {
		var n int
		content, n = p.engine.UpgradeComponentClassIDs(content)
		outcome.ClassIDReplacements = n
		if n > 0 {
			p.ui.Detailf("found %d component class ID(s) to upgrade", n)
		}
	}

	total := outcome.TotalReplacements()
	if total == 0 {
		outcome.Outcome = OutcomeUnchanged
		p.ui.Detailf("no updates needed")
		return outcome
	}

	if p.opts.DryRun {
		outcome.Outcome = OutcomeWouldModify
		p.ui.Detailf("[dry run] would make %d total change(s)", total)
		return outcome
	}

	// Nonzero count with identical content should not happen with correct
	// rule tables; treat it as unchanged rather than rewriting bytes.
	if content == original {
		outcome.Outcome = OutcomeUnchanged
		p.ui.Detailf("no changes made")
		return outcome
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		outcome.Outcome = OutcomeError
		outcome.Err = errors.Errorf("writing file: %w", err)
		p.ui.Errorf("error processing %s: %v", path, err)
		return outcome
	}

	zlog.Debug().Str("file", path).Int("replacements", total).Msg("file rewritten")
	outcome.Outcome = OutcomeModified
	p.ui.Forcef("✓ successfully updated %d attribute(s)", total)
	return outcome
}
