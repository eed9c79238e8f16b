package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"autoshader/internal/batch"
	"autoshader/internal/config"
	"autoshader/internal/logging"
	"autoshader/internal/scene"
	"autoshader/internal/shader"
	"autoshader/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config .json/.yaml file")
	root := flag.String("root", "", "Directory whose sub-directories each hold one material's textures")
	patterns := flag.String("patterns", "", "Pattern table .yaml/.json (default: built-in)")
	testN := flag.Int("test", 0, "Process only the first N directories")
	workers := flag.Int("workers", 0, "Number of classification goroutines (default: NumCPU)")
	udim := flag.Bool("udim", false, "Use UDIM tiling instead of a single 0-1 tile")
	out := flag.String("out", "", "Manifest path (default: <root>/materials.json)")
	debug := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		TextureDir:   *root,
		PatternsFile: *patterns,
		Manifest:     *out,
		UDIM:         *udim,
		Workers:      *workers,
		Debug:        *debug,
	})
	log := logging.New(cfg.LogName, cfg.Debug)

	if cfg.TextureDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no root directory. Use -root or config.")
		os.Exit(1)
	}
	if cfg.Manifest == "" {
		cfg.Manifest = filepath.Join(cfg.TextureDir, "materials.json")
	}

	table, err := cfg.Patterns()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	dirs, err := batch.Dirs(cfg.TextureDir)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	if *testN > 0 && *testN < len(dirs) {
		dirs = dirs[:*testN]
	}
	if len(dirs) == 0 {
		fmt.Println("No material directories.")
		os.Exit(0)
	}

	host := scene.NewMemory()
	for _, d := range dirs {
		host.AddObject(filepath.Base(d))
	}

	fmt.Printf("Materials: %d, Workers: %d, UV: %s\n", len(dirs), cfg.Workers, uvMode(cfg.UDIM))
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{
		Classifier: texture.NewClassifier(table),
		Builder:    shader.NewBuilder(host, log),
		UDIM:       cfg.UDIM,
		Workers:    cfg.Workers,
		Progress:   2 * time.Second,
		Log:        log,
	}, dirs)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Built: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(20, len(failed))
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}

	snap := host.Snapshot()
	if err := batch.WriteManifest(cfg.Manifest, batch.NewManifest(results, &snap)); err != nil {
		log.Warnf("manifest write failed: %v", err)
	} else {
		fmt.Printf("Manifest: %s\n", cfg.Manifest)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}

func uvMode(udim bool) string {
	if udim {
		return "UDIM"
	}
	return "single tile"
}
