package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"autoshader/internal/logging"
	"autoshader/internal/shader"
	"autoshader/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Classifier *texture.Classifier
	Builder    *shader.Builder
	// Objects returns the objects a material is assigned to. Defaults to an
	// object named like the material directory.
	Objects  func(name string) []string
	UDIM     bool
	Workers  int
	Progress time.Duration
	Log      logging.Logger
}

// Result holds the outcome of processing one material directory.
type Result struct {
	Name      string
	Dir       string
	Material  string
	Textures  *texture.Result
	Connected int
	Assigned  int
	Success   bool
	Error     string
}

// Dirs returns the immediate sub-directories of root, sorted by name.
func Dirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("batch: list %s: %w", root, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Run classifies every directory using a worker pool and then builds the
// materials one at a time, in directory order. Building is sequential
// because the builder is not safe for concurrent use.
func Run(cfg Config, dirs []string) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Log == nil {
		cfg.Log = logging.Nop()
	}
	if cfg.Objects == nil {
		cfg.Objects = func(name string) []string { return []string{name} }
	}

	total := len(dirs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if p := processed.Load(); p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						cfg.Log.Infof("[%d/%d] %.1f dirs/sec", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	dirChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range dirChan {
				results[idx] = classifyDir(cfg, dirs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range dirs {
		dirChan <- i
	}
	close(dirChan)

	wg.Wait()
	close(done)

	for i := range results {
		if results[i].Error != "" {
			continue
		}
		buildDir(cfg, &results[i])
	}
	return results
}

func classifyDir(cfg Config, dir string) Result {
	res := Result{Name: filepath.Base(dir), Dir: dir}
	textures, err := cfg.Classifier.Classify(dir)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Textures = textures
	return res
}

func buildDir(cfg Config, res *Result) {
	built, err := cfg.Builder.Build(res.Name, res.Textures, cfg.Objects(res.Name), cfg.UDIM)
	if err != nil {
		if errors.Is(err, shader.ErrNoTextures) {
			res.Error = fmt.Sprintf("no textures found in %s", res.Dir)
		} else {
			res.Error = err.Error()
		}
		return
	}
	res.Material = built.Material
	res.Connected = built.Connected
	res.Assigned = built.Assigned
	res.Success = true
	cfg.Log.Debugf("%s: %d textures connected", built.Material, built.Connected)
}
