package config

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*Config, error)

	// Get specific configuration sections
	GetAnalysis() (*AnalysisData, error)
	GetCharts() (*ChartData, error)

	IsReadOnly() bool
	Close() error
}

// Config represents the complete configuration structure
type Config struct {
	Analysis AnalysisData `json:"analysis"`
	Charts   ChartData    `json:"charts,omitempty"`
}

// AnalysisData holds configuration for one analysis run. DataFile is the
// only required setting; everything else has a usable default.
type AnalysisData struct {
	DataFile  string `json:"data_file"`
	OutputDir string `json:"output_dir,omitempty"`
	ExportCSV bool   `json:"export_csv,omitempty"`
	HeadRows  int    `json:"head_rows,omitempty"`
	TailRows  int    `json:"tail_rows,omitempty"`
}

// ChartData holds chart rendering dimensions
type ChartData struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Defaults applied by Normalize for settings left at their zero value.
const (
	DefaultOutputDir   = "charts"
	DefaultHeadRows    = 10
	DefaultTailRows    = 5
	DefaultChartWidth  = 1280
	DefaultChartHeight = 720
)

// Normalize fills unset optional fields with their defaults. DataFile is
// left alone; callers validate it separately since there is no sensible
// default input file.
func (c *Config) Normalize() {
	if c.Analysis.OutputDir == "" {
		c.Analysis.OutputDir = DefaultOutputDir
	}
	if c.Analysis.HeadRows <= 0 {
		c.Analysis.HeadRows = DefaultHeadRows
	}
	if c.Analysis.TailRows <= 0 {
		c.Analysis.TailRows = DefaultTailRows
	}
	if c.Charts.Width <= 0 {
		c.Charts.Width = DefaultChartWidth
	}
	if c.Charts.Height <= 0 {
		c.Charts.Height = DefaultChartHeight
	}
}
