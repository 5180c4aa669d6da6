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

package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/upgrade"
)

// 🎨 Summary layout
const (
	labelWidth   = 32 // label column width, counters right after
	dividerWidth = 60
)

// 📈 RunStats accumulates results across all processed files. Created at run
// start, fed one FileOutcome per file, rendered once at run end.
type RunStats struct {
	FilesProcessed         int // Files handed to the processor
	FilesModified          int // Files rewritten in place
	ExecutableReplacements int // Total ExecutableType/CreationName rewrites
	ClassIDReplacements    int // Total componentClassID rewrites
	Errors                 int // Per-file read/write/decoding failures
}

// 📝 Record folds one file outcome into the totals.
func (s *RunStats) Record(fo upgrade.FileOutcome) {
	s.FilesProcessed++
	s.ExecutableReplacements += fo.ExecutableReplacements
	s.ClassIDReplacements += fo.ClassIDReplacements

	switch fo.Outcome {
	case upgrade.OutcomeModified:
		s.FilesModified++
	case upgrade.OutcomeError:
		s.Errors++
	}
}

// TotalReplacements is the combined count across both categories.
func (s *RunStats) TotalReplacements() int {
	return s.ExecutableReplacements + s.ClassIDReplacements
}

// 📝 RenderSummary writes the end-of-run summary block. Counters for a
// restricted-out category are omitted.
func (s *RunStats) RenderSummary(w io.Writer, opts config.Options) {
	divider := strings.Repeat("=", dividerWidth)

	title := "PROCESSING SUMMARY"
	if opts.DryRun {
		title = "DRY RUN SUMMARY"
	}

	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintln(w, color.New(color.Bold).Sprint(title))
	fmt.Fprintln(w, divider)

	counter(w, "Files processed:", s.FilesProcessed)
	counter(w, "Files modified:", s.FilesModified)
	if !opts.ClassIDOnly {
		counter(w, "ExecutableType upgrades:", s.ExecutableReplacements)
	}
	if !opts.ExecutableOnly {
		counter(w, "Component ClassID upgrades:", s.ClassIDReplacements)
	}
	counter(w, "Total upgrades:", s.TotalReplacements())
	counter(w, "Errors encountered:", s.Errors)

	fmt.Fprintln(w, divider)

	if opts.DryRun {
		fmt.Fprintf(w, "\nNo files were modified. Run without --dry-run to apply changes.\n")
	}
}

func counter(w io.Writer, label string, value int) {
	fmt.Fprintf(w, "%-*s%d\n", labelWidth, label, value)
}
