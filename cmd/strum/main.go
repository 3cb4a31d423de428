// Command strum scans Go packages for annotated enums and generates
// their augmentation code.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alex/strum"
	"github.com/alex/strum/annotations"
	"github.com/alex/strum/config"
	"github.com/alex/strum/logger"
	"github.com/alex/strum/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a strum.yml configuration file")
	packagesFlag := flag.String("packages", "", "comma-separated package patterns to scan (overrides config)")
	typesFlag := flag.String("types", "", "comma-separated enum type names to generate (overrides config)")
	outDir := flag.String("out", "", "output directory (default: next to each enum)")
	workers := flag.Int("workers", 0, "parallel file emission workers (default GOMAXPROCS)")
	logLevel := flag.String("log", "", "log level: debug, info, warn, error")
	describe := flag.Bool("describe", false, "print the recognized annotations and exit")
	flag.Parse()

	if *describe {
		describeAnnotations()
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "strum: %v\n", err)
		os.Exit(1)
	}

	if *packagesFlag != "" {
		cfg.Scanning.Packages = splitList(*packagesFlag)
	}
	if *typesFlag != "" {
		cfg.Scanning.Types = splitList(*typesFlag)
	}
	if *outDir != "" {
		cfg.Generation.OutDir = *outDir
	}
	if *workers > 0 {
		cfg.Generation.Workers = *workers
	}
	if *logLevel != "" {
		lvl, err := logger.ParseLevel(*logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "strum: %v\n", err)
			os.Exit(1)
		}
		cfg.LogLevel = utils.Ptr(logger.LogLevel{Level: lvl})
	}

	if err := strum.ProcessWithConfig(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "strum: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfigFromFile(path)
	}
	// Pick up a strum.yml next to the working directory when present.
	for _, candidate := range []string{"strum.yml", "strum.yaml", ".strum.yml"} {
		if utils.FileExists(candidate) {
			return config.LoadConfigFromFile(candidate)
		}
	}
	return config.NewDefaultConfig(), nil
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

func describeAnnotations() {
	for _, spec := range annotations.BuiltinSpecs() {
		fmt.Printf("@%s - %s\n", spec.Name, spec.Description)
		for _, p := range spec.Params {
			kind := "value"
			if p.Flag {
				kind = "flag"
			}
			repeat := ""
			if p.Repeatable {
				repeat = ", repeatable"
			}
			fmt.Printf("  %-18s %s (%s%s)\n", p.Name, p.Description, kind, repeat)
		}
	}
}
