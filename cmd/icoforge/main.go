package main

import (
	"flag"
	"fmt"
	"log"

	"icoforge/pkg/config"
	"icoforge/pkg/icon"
)

func main() {
	cfgPath := flag.String("config", "", "pipeline config path (default: $ICOFORGE_CONFIG, then "+config.DefaultConfigPath+")")
	src := flag.String("src", "", "source image path (overrides config)")
	out := flag.String("out", "", "output .ico path (overrides config)")
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
	if *out != "" {
		cfg.Output = *out
	}

	if err := icon.GenerateICO(cfg.Source, cfg.Output); err != nil {
		log.Fatalf("icon generation failed: %v", err)
	}
	fmt.Printf("Created %s\n", cfg.Output)
}
