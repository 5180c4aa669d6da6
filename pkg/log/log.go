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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-facing console feedback layered over the
// structured zerolog stream. Forced lines always print; detail lines only
// when verbose is enabled.
type UserLogger struct {
	console io.Writer
	verbose bool
	zlog    zerolog.Logger
	mu      sync.Mutex
}

// 🏭 NewUserLogger creates a user logger writing to console, taking the
// structured logger from ctx.
func NewUserLogger(ctx context.Context, console io.Writer, verbose bool) *UserLogger {
	return &UserLogger{
		console: console,
		verbose: verbose,
		zlog:    *zerolog.Ctx(ctx),
	}
}

// 📝 Banner prints the startup header describing the active mode.
func (u *UserLogger) Banner(mode string, dryRun, backup bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	name := color.New(color.Bold, color.FgCyan).Sprint("dtsxup")
	fmt.Fprintf(u.console, "\n%s %s\n", name, color.New(color.Faint).Sprint("• SSIS package modernization"))
	fmt.Fprintf(u.console, "Mode: %s\n", mode)
	if dryRun {
		fmt.Fprintf(u.console, "%s\n", color.New(color.FgYellow).Sprint("DRY RUN: no files will be modified"))
	}
	if backup && !dryRun {
		fmt.Fprintf(u.console, "Backup: .bak files will be created\n")
	}
	fmt.Fprintln(u.console)

	u.zlog.Info().Str("mode", mode).Bool("dry_run", dryRun).Bool("backup", backup).Msg("starting run")
}

// 📝 Processing prints the forced per-file header line.
func (u *UserLogger) Processing(path string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	fmt.Fprintf(u.console, "\nProcessing: %s\n", color.New(color.Bold).Sprint(path))
	u.zlog.Debug().Str("file", path).Msg("processing file")
}

// 📝 Detailf prints an indented detail line, verbose mode only. The line is
// always mirrored to the debug stream.
func (u *UserLogger) Detailf(format string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if u.verbose {
		fmt.Fprintf(u.console, "  %s\n", msg)
	}
	u.zlog.Debug().Msg(msg)
}

// 📝 Forcef prints an indented line regardless of verbosity.
func (u *UserLogger) Forcef(format string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(u.console, "  %s\n", msg)
	u.zlog.Info().Msg(msg)
}

// 📝 Infof prints an informational notice.
func (u *UserLogger) Infof(format string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	pterm.Info.WithWriter(u.console).Println(msg)
	u.zlog.Info().Msg(msg)
}

// 📝 Warningf prints a warning notice (skipped files, failed backups).
func (u *UserLogger) Warningf(format string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	pterm.Warning.WithWriter(u.console).Println(msg)
	u.zlog.Warn().Msg(msg)
}

// 📝 Errorf prints a per-file error notice.
func (u *UserLogger) Errorf(format string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	pterm.Error.WithWriter(u.console).Println(msg)
	u.zlog.Error().Msg(msg)
}

// 📝 Successf prints a success notice.
func (u *UserLogger) Successf(format string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	pterm.Success.WithWriter(u.console).Println(msg)
	u.zlog.Info().Msg(msg)
}
