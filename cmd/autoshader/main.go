package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"autoshader/internal/batch"
	"autoshader/internal/config"
	"autoshader/internal/logging"
	"autoshader/internal/scene"
	"autoshader/internal/shader"
	"autoshader/internal/texture"
)

// overrides collects repeated -set role=path flags.
type overrides map[texture.Role]string

func (o overrides) String() string { return fmt.Sprint(map[texture.Role]string(o)) }

func (o overrides) Set(v string) error {
	k, path, ok := strings.Cut(v, "=")
	if !ok || path == "" {
		return fmt.Errorf("want role=path, got %q", v)
	}
	role, err := texture.ParseRole(k)
	if err != nil {
		return err
	}
	o[role] = path
	return nil
}

func main() {
	configFile := flag.String("config", "", "Path to config .json/.yaml file")
	name := flag.String("name", "", "Material name (required)")
	dir := flag.String("dir", "", "Texture directory (default: <project>/sourceimages)")
	project := flag.String("project", "", "Project root holding sourceimages/")
	patterns := flag.String("patterns", "", "Pattern table .yaml/.json (default: built-in)")
	objects := flag.String("objects", "", "Comma-separated objects to assign the material to")
	udim := flag.Bool("udim", false, "Use UDIM tiling instead of a single 0-1 tile")
	updateDir := flag.String("update-dir", "", "After building, re-point the material at textures from this directory")
	without := flag.String("without", "", "Comma-separated node types the host lacks")
	out := flag.String("out", "", "Write the resulting scene as JSON to this file")
	debug := flag.Bool("debug", false, "Verbose logging")
	set := overrides{}
	flag.Var(set, "set", "Override a detected texture: role=path (repeatable)")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		os.Exit(2)
	}

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
		TextureDir:   *dir,
		ProjectRoot:  *project,
		PatternsFile: *patterns,
		Manifest:     *out,
		UDIM:         *udim,
		Debug:        *debug,
	})
	log := logging.New(cfg.LogName, cfg.Debug)

	table, err := cfg.Patterns()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	classifier := texture.NewClassifier(table)

	textures := &texture.Result{}
	var resolver texture.Resolver
	if root, err := resolver.Resolve(cfg.TextureDir, cfg.ProjectRoot); err == nil {
		textures, err = classifier.Classify(root)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		fmt.Printf("Directory: %s (%d textures)\n", root, textures.Len())
	} else if len(set) == 0 {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	for _, role := range texture.Roles() {
		if path, ok := set[role]; ok {
			textures.Replace(role, path)
		}
	}

	host := scene.NewMemory()
	if *without != "" {
		host.WithoutNodeTypes(splitList(*without)...)
	}
	targets := splitList(*objects)
	host.AddObject(targets...)

	builder := shader.NewBuilder(host, log)
	res, err := builder.Build(*name, textures, targets, cfg.UDIM)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	fmt.Printf("Material: %s (shading group %s)\n", res.Material, res.Binding)
	fmt.Printf("Connected: %d/%d, assigned to %d/%d objects\n", res.Connected, textures.Len(), res.Assigned, len(targets))

	if *updateDir != "" {
		next, err := classifier.Classify(*updateDir)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		n, err := builder.Update(res.Material, next.Map(), cfg.UDIM)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		fmt.Printf("Updated: %d texture maps\n", n)
	}

	for _, msg := range host.Notifications() {
		log.Infof("%s", msg)
	}

	if cfg.Manifest != "" {
		snap := host.Snapshot()
		results := []batch.Result{{
			Name:      *name,
			Dir:       resolver.Last(),
			Material:  res.Material,
			Textures:  textures,
			Connected: res.Connected,
			Assigned:  res.Assigned,
			Success:   true,
		}}
		if err := batch.WriteManifest(cfg.Manifest, batch.NewManifest(results, &snap)); err != nil {
			log.Warnf("manifest write failed: %v", err)
		} else {
			fmt.Printf("Scene: %s\n", cfg.Manifest)
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
