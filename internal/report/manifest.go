package report

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest records what one analysis run produced, written as run.json
// next to the charts.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	DataFile    string    `json:"data_file"`
	Rows        int       `json:"rows"`
	DayRows     int       `json:"day_rows"`
	NightRows   int       `json:"night_rows"`
	Charts      []string  `json:"charts"`
	Exports     []string  `json:"exports,omitempty"`
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(filename string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}
