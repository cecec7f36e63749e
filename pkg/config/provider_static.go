package config

// StaticProvider implements Provider for a fixed in-memory configuration,
// used when the tool is driven entirely by command line flags.
type StaticProvider struct {
	config *Config
}

// NewStaticProvider wraps an already-built configuration
func NewStaticProvider(cfg *Config) *StaticProvider {
	return &StaticProvider{config: cfg}
}

// LoadConfig returns the wrapped configuration
func (s *StaticProvider) LoadConfig() (*Config, error) {
	return s.config, nil
}

// GetAnalysis returns the analysis configuration
func (s *StaticProvider) GetAnalysis() (*AnalysisData, error) {
	return &s.config.Analysis, nil
}

// GetCharts returns the chart configuration
func (s *StaticProvider) GetCharts() (*ChartData, error) {
	return &s.config.Charts, nil
}

// IsReadOnly returns true, the wrapped configuration is never written back
func (s *StaticProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for the static provider
func (s *StaticProvider) Close() error {
	return nil
}
