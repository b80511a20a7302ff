package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/util"
)

// SourceExtensions lists the file extensions picked up when walking a directory.
var SourceExtensions = []string{".s", ".S", ".asm"}

type FormatOptions struct {
	Check  bool // report changes without writing
	Stdout bool // keep the formatted text in the result instead of writing
	Jobs   int  // parallel workers, runtime.NumCPU() when <= 0
	Format prettier.Options
}

type FormatResult struct {
	Path      string
	Changed   bool
	Formatted []byte
	Err       error
}

// FormatPaths formats every assembly file named by paths. Directories are
// walked recursively. Results keep the order in which files were found;
// per-file failures are reported in FormatResult.Err.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	formatter := prettier.New(opts.Format)
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = formatSingleFile(formatter, path, opts)
			util.LogF("Thumb Prettier: %s changed=%v err=%v", path, results[i].Changed, results[i].Err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

func formatSingleFile(formatter *prettier.Formatter, path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}

	formatted, err := formatter.Format(string(data))
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}
	result.Changed = formatted != string(data)

	if opts.Check {
		return result
	}
	if opts.Stdout {
		result.Formatted = []byte(formatted)
		return result
	}

	if result.Changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, []byte(formatted), mode.Perm()); err != nil {
			result.Err = err
			result.Changed = false
		}
	}
	return result
}

func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		var found []string
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if isSourceFile(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		for _, path := range found {
			add(path)
		}
	}
	return files, nil
}

func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range SourceExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
