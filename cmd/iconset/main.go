package main

import (
	"flag"
	"fmt"
	"log"

	"icoforge/pkg/config"
	"icoforge/pkg/iconset"
)

func main() {
	cfgPath := flag.String("config", "", "pipeline config path (default: $ICOFORGE_CONFIG, then "+config.DefaultConfigPath+")")
	src := flag.String("src", "", "source image path (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	syso := flag.Bool("syso", false, "also write "+iconset.SysoName)
	flag.Parse()

	path := *cfgPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("failed to load config %q: %v", path, err)
	}
	if *src != "" {
		cfg.Source = *src
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *syso {
		cfg.WriteSyso = true
	}

	m, err := iconset.Generate(cfg)
	if err != nil {
		log.Fatalf("icon set generation failed: %v", err)
	}

	for _, a := range m.Artifacts {
		fmt.Printf("Created %s\n", a.Path)
	}
}
