package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"oxjs/internal/cache"
)

// listSourceFiles returns every *.rs file under dir, sorted so the
// assembled program order does not depend on directory iteration.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rs") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TranspileDir transpiles every source file under dir, up to jobs files
// at a time (jobs <= 0 means GOMAXPROCS). Results come back in sorted
// path order regardless of completion order; the first failure cancels
// the remaining work.
func TranspileDir(ctx context.Context, dir string, jobs int, c *cache.Cache) ([]*Unit, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// index-addressed slots, so workers never contend on the result
	units := make([]*Unit, len(files))

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
			u, err := TranspileFile(path, c)
			if err != nil {
				return err
			}
			units[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}
