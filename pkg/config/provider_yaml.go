package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *Config
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*Config, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Analysis AnalysisYAML `yaml:"analysis"`
		Charts   ChartYAML    `yaml:"charts,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &Config{
		Analysis: AnalysisData{
			DataFile:  yamlConfig.Analysis.DataFile,
			OutputDir: yamlConfig.Analysis.OutputDir,
			ExportCSV: yamlConfig.Analysis.ExportCSV,
			HeadRows:  yamlConfig.Analysis.HeadRows,
			TailRows:  yamlConfig.Analysis.TailRows,
		},
		Charts: ChartData{
			Width:  yamlConfig.Charts.Width,
			Height: yamlConfig.Charts.Height,
		},
	}

	y.config = config
	return config, nil
}

// GetAnalysis returns the analysis configuration
func (y *YAMLProvider) GetAnalysis() (*AnalysisData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Analysis, nil
}

// GetCharts returns the chart configuration
func (y *YAMLProvider) GetCharts() (*ChartData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Charts, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags
type AnalysisYAML struct {
	DataFile  string `yaml:"data-file"`
	OutputDir string `yaml:"output-dir,omitempty"`
	ExportCSV bool   `yaml:"export-csv,omitempty"`
	HeadRows  int    `yaml:"head-rows,omitempty"`
	TailRows  int    `yaml:"tail-rows,omitempty"`
}

type ChartYAML struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}
