// escnexport converts a YAML scene description into a Godot .escn scene
// with physics bodies and collision shapes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/escn-export/internal/config"
	"github.com/Faultbox/escn-export/internal/export"
	"github.com/Faultbox/escn-export/internal/logger"
	"github.com/Faultbox/escn-export/internal/scene"
	"github.com/Faultbox/escn-export/pkg/escn"
)

var flagOutput = flag.String("o", "", "Output .escn path (default: scene file with .escn extension)")

func main() {
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	scenePath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sc, err := scene.LoadFile(scenePath)
	if err != nil {
		logger.Fatal("loading scene", zap.Error(err))
	}

	doc := escn.NewDocument()
	export.New(doc, cfg).ExportScene(sc)

	outPath := *flagOutput
	if outPath == "" {
		outPath = replaceExt(scenePath, ".escn")
	}

	out, err := os.Create(outPath)
	if err != nil {
		logger.Fatal("creating output file", zap.Error(err))
	}
	defer out.Close()

	if err := doc.Write(out); err != nil {
		logger.Fatal("writing scene", zap.Error(err))
	}

	logger.Info("scene exported",
		zap.String("scene", sc.Name),
		zap.String("output", outPath),
		zap.Int("nodes", len(doc.Nodes())),
		zap.Int("resources", doc.ResourceCount()),
	)
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func printUsage() {
	fmt.Println(`escnexport - export a YAML scene description to Godot .escn

Usage:
  escnexport [options] <scene.yaml>

Options:
  -o <path>        Output .escn path
  -config <path>   Path to config file
  -debug           Enable debug logging
  -no-modifiers    Export base geometry without modifiers
  -log-file <path> Write logs to this file`)
}
