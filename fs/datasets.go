// Package fs loads analytics datasets from a directory tree.
package fs

import (
	"encoding/json"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/pandora"
)

// DatasetPattern selects candidate dataset files under the data directory.
const DatasetPattern = "**/*.json"

// Dataset file names.
const (
	MoodFile   = "mood.json"
	StressFile = "stress.json"
	SleepFile  = "sleep.json"
)

// LoadDatasets reads mood.json, stress.json and sleep.json from anywhere
// under dir. A series whose file is absent keeps its built-in default. When
// a name occurs more than once the shallowest path wins, then the
// lexically smallest.
func LoadDatasets(dir string) (pandora.Datasets, error) {
	ds := pandora.DefaultDatasets()
	if dir == "" {
		return ds, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return ds, fmt.Errorf("failed to access data dir: %w", err)
	}
	if !info.IsDir() {
		return ds, fmt.Errorf("data dir %s is not a directory", dir)
	}

	fsys := os.DirFS(dir)
	found, err := discover(fsys)
	if err != nil {
		return ds, err
	}

	if p, ok := found[MoodFile]; ok {
		if err := decode(fsys, p, &ds.Mood); err != nil {
			return ds, err
		}
	}
	if p, ok := found[StressFile]; ok {
		if err := decode(fsys, p, &ds.Stress); err != nil {
			return ds, err
		}
	}
	if p, ok := found[SleepFile]; ok {
		if err := decode(fsys, p, &ds.Sleep); err != nil {
			return ds, err
		}
	}
	return ds, nil
}

// discover maps each dataset file name to its preferred path in fsys.
func discover(fsys iofs.FS) (map[string]string, error) {
	candidates := map[string][]string{}
	err := doublestar.GlobWalk(fsys, DatasetPattern, func(p string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		switch name := path.Base(p); name {
		case MoodFile, StressFile, SleepFile:
			candidates[name] = append(candidates[name], p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error matching pattern: %w", err)
	}

	found := make(map[string]string, len(candidates))
	for name, paths := range candidates {
		sort.Slice(paths, func(i, j int) bool {
			di, dj := strings.Count(paths[i], "/"), strings.Count(paths[j], "/")
			if di != dj {
				return di < dj
			}
			return paths[i] < paths[j]
		})
		found[name] = paths[0]
	}
	return found, nil
}

func decode[T any](fsys iofs.FS, p string, dst *[]T) error {
	data, err := iofs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p, err)
	}
	var points []T
	if err := json.Unmarshal(data, &points); err != nil {
		return fmt.Errorf("decode %s: %w", p, err)
	}
	*dst = points
	return nil
}
