package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrissnell/metrotraffic/internal/app"
	"github.com/chrissnell/metrotraffic/internal/constants"
	"github.com/chrissnell/metrotraffic/internal/log"
	"github.com/chrissnell/metrotraffic/pkg/config"
)

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML configuration file. Optional when -data is given")
	dataFile := flag.String("data", "", "Path to the traffic dataset (.csv or .xlsx). Overrides the config file")
	outputDir := flag.String("outdir", "", "Directory for charts and exports. Overrides the config file")
	exportCSV := flag.Bool("export-csv", false, "Export aggregate tables as CSV next to the charts")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("metrotraffic %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Assemble configuration from the config file plus flag overrides
	provider, err := buildProvider(*cfgFile, *dataFile, *outputDir, *exportCSV)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Create and run the application
	application := app.New(provider, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

// buildProvider resolves the effective configuration. With no -config the
// flags alone drive the run; with -config the file is loaded first and any
// flags given override it.
func buildProvider(cfgFile, dataFile, outputDir string, exportCSV bool) (config.Provider, error) {
	if cfgFile == "" {
		if dataFile == "" {
			return nil, errors.New("no input data file. Pass -data or -config. Run with -h for help")
		}
		return config.NewStaticProvider(&config.Config{
			Analysis: config.AnalysisData{
				DataFile:  dataFile,
				OutputDir: outputDir,
				ExportCSV: exportCSV,
			},
		}), nil
	}

	filename, _ := filepath.Abs(cfgFile)
	provider := config.NewYAMLProvider(filename)
	cfg, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}
	if dataFile != "" {
		cfg.Analysis.DataFile = dataFile
	}
	if outputDir != "" {
		cfg.Analysis.OutputDir = outputDir
	}
	if exportCSV {
		cfg.Analysis.ExportCSV = true
	}
	return config.NewStaticProvider(cfg), nil
}
