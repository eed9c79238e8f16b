package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"autoshader/internal/config"
	"autoshader/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config .json/.yaml file")
	dir := flag.String("dir", "", "Texture directory (default: <project>/sourceimages)")
	project := flag.String("project", "", "Project root holding sourceimages/")
	patterns := flag.String("patterns", "", "Pattern table .yaml/.json (default: built-in)")
	probe := flag.Bool("probe", false, "Read image headers and print resolution")
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
	cfg.Resolve(config.Flags{TextureDir: *dir, ProjectRoot: *project, PatternsFile: *patterns})

	table, err := cfg.Patterns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading patterns: %v\n", err)
		os.Exit(1)
	}

	var resolver texture.Resolver
	root, err := resolver.Resolve(cfg.TextureDir, cfg.ProjectRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Use -dir or -project.\n", err)
		os.Exit(1)
	}

	result, err := texture.NewClassifier(table).Classify(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Directory: %s\n", root)
	if result.Len() == 0 {
		fmt.Println("No textures found in directory")
		return
	}

	var prober texture.Prober
	if *probe {
		prober = texture.NewProbeCache()
	}
	printResult(os.Stdout, result, prober)
	fmt.Printf("Found %d textures\n", result.Len())
}

// printResult writes one line per classified role. When p is non-nil each
// line also carries the image format and resolution.
func printResult(w io.Writer, result *texture.Result, p texture.Prober) {
	for _, e := range result.Entries {
		line := fmt.Sprintf("  %-16s %s", e.Role, e.Path)
		if p != nil {
			info, err := p.Probe(e.Path)
			switch {
			case err == nil:
				line += fmt.Sprintf("  (%s %dx%d)", info.Format, info.Width, info.Height)
			case errors.Is(err, texture.ErrUnsupportedProbe):
			default:
				line += fmt.Sprintf("  (unreadable: %v)", err)
			}
		}
		fmt.Fprintln(w, line)
	}
}
