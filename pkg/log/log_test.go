package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Plain output so assertions don't fight ANSI codes
	color.NoColor = true
	pterm.DisableColor()
	m.Run()
}

func TestUserLogger_VerboseGating(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		wantDetail bool
	}{
		{name: "detail_shown_when_verbose", verbose: true, wantDetail: true},
		{name: "detail_hidden_by_default", verbose: false, wantDetail: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			ui := NewUserLogger(context.Background(), &console, tt.verbose)

			ui.Detailf("found %d attribute(s)", 3)
			ui.Forcef("always visible")

			if tt.wantDetail {
				assert.Contains(t, console.String(), "found 3 attribute(s)")
			} else {
				assert.NotContains(t, console.String(), "found 3 attribute(s)")
			}
			assert.Contains(t, console.String(), "always visible")
		})
	}
}

func TestUserLogger_Banner(t *testing.T) {
	tests := []struct {
		name        string
		dryRun      bool
		backup      bool
		wantLines   []string
		absentLines []string
	}{
		{
			name:        "plain_run",
			wantLines:   []string{"dtsxup", "Mode: Full upgrade"},
			absentLines: []string{"DRY RUN", "Backup:"},
		},
		{
			name:      "dry_run_notice",
			dryRun:    true,
			wantLines: []string{"DRY RUN: no files will be modified"},
			// Backup notice is pointless when nothing gets written
			absentLines: []string{"Backup:"},
		},
		{
			name:      "backup_notice",
			backup:    true,
			wantLines: []string{"Backup: .bak files will be created"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			ui := NewUserLogger(context.Background(), &console, false)

			ui.Banner("Full upgrade (ExecutableType + Component ClassID)", tt.dryRun, tt.backup)

			for _, line := range tt.wantLines {
				assert.Contains(t, console.String(), line)
			}
			for _, line := range tt.absentLines {
				assert.NotContains(t, console.String(), line)
			}
		})
	}
}

func TestUserLogger_Processing(t *testing.T) {
	var console bytes.Buffer
	ui := NewUserLogger(context.Background(), &console, false)

	ui.Processing("pkg/orders.dtsx")

	assert.Contains(t, console.String(), "Processing: pkg/orders.dtsx")
}

func TestUserLogger_Notices(t *testing.T) {
	var console bytes.Buffer
	ui := NewUserLogger(context.Background(), &console, false)

	ui.Infof("found %d file(s)", 2)
	ui.Warningf("skipping %s", "notes.txt")
	ui.Errorf("error processing %s", "broken.dtsx")
	ui.Successf("all operations completed")

	assert.Contains(t, console.String(), "found 2 file(s)")
	assert.Contains(t, console.String(), "skipping notes.txt")
	assert.Contains(t, console.String(), "error processing broken.dtsx")
	assert.Contains(t, console.String(), "all operations completed")
}
