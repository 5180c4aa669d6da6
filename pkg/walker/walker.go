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

package walker

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/log"
	"github.com/walteh/dtsxup/pkg/status"
	"github.com/walteh/dtsxup/pkg/upgrade"
	"gitlab.com/tozd/go/errors"
)

// Package files are recognized by suffix alone; the walker never inspects
// content.
const (
	packageExt   = ".dtsx"
	backupSuffix = ".bak"
)

// 🚶 Walker resolves the target path to package files and runs the processor
// over them one at a time, in enumeration order.
type Walker struct {
	opts  config.Options
	proc  *upgrade.Processor
	ui    *log.UserLogger
	stats *status.RunStats
}

// 🏭 New creates a walker for the given run options.
func New(opts config.Options, proc *upgrade.Processor, ui *log.UserLogger, stats *status.RunStats) *Walker {
	return &Walker{
		opts:  opts,
		proc:  proc,
		ui:    ui,
		stats: stats,
	}
}

// 🎯 Run processes the target path. A missing path is the only fatal error;
// everything file-scoped is recorded in stats and the walk continues.
func (w *Walker) Run(ctx context.Context) error {
	info, err := os.Stat(w.opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("path not found: %s", w.opts.Path)
		}
		return errors.Errorf("inspecting path: %w", err)
	}

	if info.IsDir() {
		return w.runDir(ctx)
	}
	w.runFile(ctx, w.opts.Path)
	return nil
}

// runFile handles a single explicitly named file. A non-package suffix is a
// skip notice, not an error.
func (w *Walker) runFile(ctx context.Context, path string) {
	if !strings.EqualFold(filepath.Ext(path), packageExt) {
		w.ui.Warningf("skipping non-DTSX file: %s", path)
		return
	}
	w.processOne(ctx, path)
}

// runDir enumerates package files under the target directory, immediate
// children only unless recursive mode is on. Non-package files get a skip
// notice, except .bak artifacts from earlier runs.
func (w *Walker) runDir(ctx context.Context) error {
	pattern := "*"
	if w.opts.Recursive {
		pattern = "**/*"
	}

	var matches []string
	err := doublestar.GlobWalk(os.DirFS(w.opts.Path), pattern, func(rel string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		switch {
		case strings.EqualFold(filepath.Ext(rel), packageExt):
			matches = append(matches, rel)
		case !strings.EqualFold(filepath.Ext(rel), backupSuffix):
			w.ui.Warningf("skipping non-DTSX file: %s", filepath.Join(w.opts.Path, rel))
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("enumerating %s files: %w", packageExt, err)
	}

	if len(matches) == 0 {
		w.ui.Infof("no %s files found in %s", packageExt, w.opts.Path)
		return nil
	}

	w.ui.Infof("found %d %s file(s) to process", len(matches), packageExt)

	for _, rel := range matches {
		w.processOne(ctx, filepath.Join(w.opts.Path, rel))
	}
	return nil
}

// processOne takes the optional backup and runs the processor. A failed
// backup skips the file entirely; processing never proceeds without a
// requested backup in place.
func (w *Walker) processOne(ctx context.Context, path string) {
	if w.opts.Backup && !w.opts.DryRun {
		if err := w.backup(ctx, path); err != nil {
			w.ui.Warningf("error creating backup for %s, skipping: %v", path, err)
			return
		}
	}
	w.stats.Record(w.proc.Process(ctx, path))
}

// backup copies path to path.bak, carrying over the file mode and
// modification time.
func (w *Walker) backup(ctx context.Context, path string) error {
	backupPath := path + backupSuffix

	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("inspecting file: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return errors.Errorf("opening file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return errors.Errorf("copying content: %w", err)
	}
	if err := dst.Close(); err != nil {
		return errors.Errorf("closing backup: %w", err)
	}

	// Best effort timestamp carry-over, not all filesystems support it.
	if err := os.Chtimes(backupPath, info.ModTime(), info.ModTime()); err != nil {
		zerolog.Ctx(ctx).Debug().Str("file", backupPath).Err(err).Msg("preserving backup timestamps")
	}

	w.ui.Detailf("✓ backup created: %s", filepath.Base(backupPath))
	return nil
}
