package status

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/upgrade"
)

func TestRunStats_Record(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []upgrade.FileOutcome
		want     RunStats
	}{
		{
			name: "modified_files_counted",
			outcomes: []upgrade.FileOutcome{
				{Outcome: upgrade.OutcomeModified, ExecutableReplacements: 2, ClassIDReplacements: 1},
				{Outcome: upgrade.OutcomeModified, ClassIDReplacements: 3},
			},
			want: RunStats{
				FilesProcessed:         2,
				FilesModified:          2,
				ExecutableReplacements: 2,
				ClassIDReplacements:    4,
			},
		},
		{
			name: "unchanged_and_dry_run_not_modified",
			outcomes: []upgrade.FileOutcome{
				{Outcome: upgrade.OutcomeUnchanged},
				{Outcome: upgrade.OutcomeWouldModify, ExecutableReplacements: 1},
			},
			want: RunStats{
				FilesProcessed:         2,
				ExecutableReplacements: 1,
			},
		},
		{
			name: "errors_counted",
			outcomes: []upgrade.FileOutcome{
				{Outcome: upgrade.OutcomeError},
				{Outcome: upgrade.OutcomeModified, ExecutableReplacements: 1},
			},
			want: RunStats{
				FilesProcessed:         2,
				FilesModified:          1,
				ExecutableReplacements: 1,
				Errors:                 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &RunStats{}
			for _, fo := range tt.outcomes {
				stats.Record(fo)
			}
			assert.Equal(t, tt.want, *stats)
		})
	}
}

func TestRunStats_RenderSummary(t *testing.T) {
	stats := &RunStats{
		FilesProcessed:         4,
		FilesModified:          3,
		ExecutableReplacements: 5,
		ClassIDReplacements:    2,
		Errors:                 1,
	}

	tests := []struct {
		name        string
		opts        config.Options
		wantLines   []string
		absentLines []string
	}{
		{
			name: "full_run",
			opts: config.Options{},
			wantLines: []string{
				"PROCESSING SUMMARY",
				"Files processed:                4",
				"Files modified:                 3",
				"ExecutableType upgrades:        5",
				"Component ClassID upgrades:     2",
				"Total upgrades:                 7",
				"Errors encountered:             1",
			},
			absentLines: []string{"DRY RUN"},
		},
		{
			name: "dry_run_title_and_footer",
			opts: config.Options{DryRun: true},
			wantLines: []string{
				"DRY RUN SUMMARY",
				"No files were modified. Run without --dry-run to apply changes.",
			},
			absentLines: []string{"PROCESSING SUMMARY"},
		},
		{
			name:        "executable_only_omits_classid_counter",
			opts:        config.Options{ExecutableOnly: true},
			wantLines:   []string{"ExecutableType upgrades:        5"},
			absentLines: []string{"Component ClassID upgrades:"},
		},
		{
			name:        "classid_only_omits_executable_counter",
			opts:        config.Options{ClassIDOnly: true},
			wantLines:   []string{"Component ClassID upgrades:     2"},
			absentLines: []string{"ExecutableType upgrades:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			stats.RenderSummary(&out, tt.opts)

			for _, line := range tt.wantLines {
				assert.Contains(t, out.String(), line)
			}
			for _, line := range tt.absentLines {
				assert.NotContains(t, out.String(), line)
			}
		})
	}
}
