// Package app wires the analysis pipeline together: load the dataset,
// derive time fields, partition, aggregate, and write the report, the
// charts, and the run manifest, in a fixed order.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/chrissnell/metrotraffic/internal/charts"
	"github.com/chrissnell/metrotraffic/internal/constants"
	"github.com/chrissnell/metrotraffic/internal/dataset"
	"github.com/chrissnell/metrotraffic/internal/log"
	"github.com/chrissnell/metrotraffic/internal/report"
	"github.com/chrissnell/metrotraffic/internal/stats"
	"github.com/chrissnell/metrotraffic/pkg/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App represents the analysis application
type App struct {
	configProvider config.Provider
	logger         *zap.SugaredLogger
	out            io.Writer
}

// New creates a new application instance writing its report to stdout
func New(configProvider config.Provider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
		out:            os.Stdout,
	}
}

// SetOutput redirects the textual report, used by tests
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func dayOfWeekLabel(k int) string {
	if k >= 0 && k < len(dayNames) {
		return fmt.Sprintf("%d (%s)", k, dayNames[k])
	}
	return strconv.Itoa(k)
}

// Run executes one full analysis pass and returns when every artifact is
// written. Any stage error aborts the run. SIGINT or SIGTERM cancels the
// context, which is honored between stages.
func (a *App) Run(ctx context.Context) error {
	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg.Normalize()
	if cfg.Analysis.DataFile == "" {
		return errors.New("no data file configured")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigs:
			log.Info("shutdown signal received, aborting analysis...")
			cancel()
		case <-ctx.Done():
		}
	}()

	runID := uuid.New().String()
	a.logger.Infof("starting analysis run %s on %s", runID, cfg.Analysis.DataFile)

	table, err := dataset.Load(cfg.Analysis.DataFile)
	if err != nil {
		return err
	}
	table = dataset.DeriveTime(table)
	a.logger.Infof("loaded %d observations", len(table))

	renderer, err := charts.NewRenderer(cfg.Analysis.OutputDir, cfg.Charts.Width, cfg.Charts.Height)
	if err != nil {
		return err
	}
	rep := report.New(a.out)

	// Dataset shape and a look at the first and last rows.
	rep.Overview(cfg.Analysis.DataFile, table)
	rep.HeadTail(table, cfg.Analysis.HeadRows, cfg.Analysis.TailRows)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Distribution of traffic volume across the whole dataset.
	volumes := table.Column(dataset.Volume)
	if err := a.histogram(rep, renderer, "volume_hist", volumes, charts.HistogramOptions{
		Title:  "Traffic Volume Histogram",
		YLabel: "Frequency",
	}); err != nil {
		return err
	}
	allSummary := stats.Describe(volumes)
	rep.Describe("Traffic Volume (all hours)", allSummary)

	// Day/night split at the 7am and 7pm boundaries. The paired
	// histograms share locked axes so the two panels compare directly.
	day, night := dataset.SplitDayNight(table)
	a.logger.Debugf("partitioned into %d day and %d night rows", len(day), len(night))

	pairX := &charts.Range{Min: -50, Max: 8000}
	pairY := &charts.Range{Min: 0, Max: 8000}
	dayVolumes := day.Column(dataset.Volume)
	nightVolumes := night.Column(dataset.Volume)
	if err := a.histogram(rep, renderer, "day_hist", dayVolumes, charts.HistogramOptions{
		Title:  "Traffic from 7am to 7pm",
		YLabel: "Frequency of Vehicles",
		XRange: pairX,
		YRange: pairY,
	}); err != nil {
		return err
	}
	if err := a.histogram(rep, renderer, "night_hist", nightVolumes, charts.HistogramOptions{
		Title:  "Traffic from 7pm to 7am",
		YLabel: "Frequency of Vehicles",
		XRange: pairX,
		YRange: pairY,
	}); err != nil {
		return err
	}
	daySummary := stats.Describe(dayVolumes)
	nightSummary := stats.Describe(nightVolumes)
	rep.Describe("Traffic Volume (7am to 7pm)", daySummary)
	rep.Describe("Traffic Volume (7pm to 7am)", nightSummary)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Daytime traffic by month.
	monthly := stats.GroupMeanByInt(day, func(o dataset.Observation) int { return o.Month }, dataset.Volume)
	rep.GroupMeansInt("Average Traffic Volume per Month", "month", monthly, nil)
	if err := a.line(rep, renderer, "monthly_volume", groupPointsInt(monthly), charts.LineOptions{
		Title:  "Traffic Volume per Month",
		XLabel: "Month of the Year",
		YLabel: "Volume of Traffic",
	}); err != nil {
		return err
	}

	// July year over year, to spot a single year dragging the month down.
	july := dataset.Filter(day, func(o dataset.Observation) bool { return o.Month == 7 })
	julyByYear := stats.GroupMeanByInt(july, func(o dataset.Observation) int { return o.Year }, dataset.Volume)
	rep.GroupMeansInt("Average July Traffic Volume per Year", "year", julyByYear, nil)
	if err := a.line(rep, renderer, "july_by_year", groupPointsInt(julyByYear), charts.LineOptions{
		Title:  "July Traffic Trends",
		XLabel: "July Year",
		YLabel: "Frequency",
	}); err != nil {
		return err
	}

	// Daytime traffic by day of week, Monday = 0 through Sunday = 6.
	dow := stats.GroupMeanByInt(day, func(o dataset.Observation) int { return o.DayOfWeek }, dataset.Volume)
	rep.GroupMeansInt("Average Traffic Volume per Day of Week", "day of week", dow, dayOfWeekLabel)
	if err := a.line(rep, renderer, "dow_volume", groupPointsInt(dow), charts.LineOptions{
		Title:  "Volume of Traffic per Day",
		XLabel: "Day of the Week",
		YLabel: "Volume of Traffic",
	}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Hourly profile of weekday versus weekend daytime traffic, again on
	// locked shared axes.
	weekdays, weekends := dataset.SplitWeekdayWeekend(day)
	weekdayHours := stats.GroupMeanByInt(weekdays, func(o dataset.Observation) int { return o.Hour }, dataset.Volume)
	weekendHours := stats.GroupMeanByInt(weekends, func(o dataset.Observation) int { return o.Hour }, dataset.Volume)
	rep.GroupMeansInt("Weekend Daytime Traffic Volume Distribution", "hour", weekendHours, nil)
	rep.GroupMeansInt("Weekday Daytime Traffic Volume Distribution", "hour", weekdayHours, nil)

	hourX := &charts.Range{Min: 6, Max: 19}
	hourY := &charts.Range{Min: 1500, Max: 6500}
	if err := a.line(rep, renderer, "weekday_hours", groupPointsInt(weekdayHours), charts.LineOptions{
		Title:  "Average Traffic Volume during Business Days",
		XLabel: "Time of Day",
		YLabel: "Traffic Volume",
		XRange: hourX,
		YRange: hourY,
	}); err != nil {
		return err
	}
	if err := a.line(rep, renderer, "weekend_hours", groupPointsInt(weekendHours), charts.LineOptions{
		Title:  "Average Traffic Volume during Weekends",
		XLabel: "Time of Day",
		YLabel: "Traffic Volume",
		XRange: hourX,
		YRange: hourY,
	}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Correlation of daytime volume against the numeric weather columns.
	dayTemps := day.Column(dataset.Temp)
	correlations := []report.CorrelationLine{
		{Label: "traffic volume vs temperature", R: stats.Pearson(dayVolumes, dayTemps)},
		{Label: "traffic volume vs rain", R: stats.Pearson(dayVolumes, day.Column(dataset.Rain1H))},
		{Label: "traffic volume vs snow", R: stats.Pearson(dayVolumes, day.Column(dataset.Snow1H))},
		{Label: "traffic volume vs cloud coverage", R: stats.Pearson(dayVolumes, day.Column(dataset.Clouds))},
	}
	rep.Correlations("Correlation between Traffic Volume and Weather", correlations)

	if len(day) == 0 {
		rep.Note("skipping scatter chart: empty day partition")
	} else {
		if _, err := renderer.Scatter("temp_vs_volume", dayVolumes, dayTemps, charts.ScatterOptions{
			Title:  "Temperature vs. Volume",
			XLabel: "Volume of Traffic",
			YLabel: "Temperature",
			YRange: &charts.Range{Min: 200, Max: 325},
		}); err != nil {
			return err
		}
	}

	// Average daytime volume per weather category, coarse then detailed.
	byMain := stats.GroupMeanByString(day, func(o dataset.Observation) string { return o.WeatherMain }, dataset.Volume)
	rep.GroupMeansString("Average Traffic Volume by Weather Type", "weather_main", byMain)
	if err := a.barh(rep, renderer, "weather_main", categoryValues(byMain), charts.BarHOptions{
		Title: "Impact of Weather Type on Traffic Volume",
	}); err != nil {
		return err
	}

	byDescription := stats.GroupMeanByString(day, func(o dataset.Observation) string { return o.WeatherDescription }, dataset.Volume)
	rep.GroupMeansString("Average Traffic Volume by Weather Description", "weather_description", byDescription)
	if err := a.barh(rep, renderer, "weather_description", categoryValues(byDescription), charts.BarHOptions{
		Title: "In-depth Description of Weather",
	}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var exports []string
	if cfg.Analysis.ExportCSV {
		exports, err = exportAggregates(cfg.Analysis.OutputDir, aggregateExports{
			describes: []report.LabeledSummary{
				{Label: "all", Summary: allSummary},
				{Label: "day", Summary: daySummary},
				{Label: "night", Summary: nightSummary},
			},
			monthly:       monthly,
			julyByYear:    julyByYear,
			dayOfWeek:     dow,
			weekdayHours:  weekdayHours,
			weekendHours:  weekendHours,
			byMain:        byMain,
			byDescription: byDescription,
			correlations:  correlations,
		})
		if err != nil {
			return err
		}
		a.logger.Infof("exported %d aggregate CSV files", len(exports))
	}

	manifest := report.Manifest{
		RunID:       runID,
		Version:     constants.Version,
		GeneratedAt: time.Now().UTC(),
		DataFile:    cfg.Analysis.DataFile,
		Rows:        len(table),
		DayRows:     len(day),
		NightRows:   len(night),
		Charts:      renderer.Files(),
		Exports:     exports,
	}
	if err := report.WriteManifest(filepath.Join(cfg.Analysis.OutputDir, "run.json"), manifest); err != nil {
		return fmt.Errorf("writing run manifest: %w", err)
	}

	a.logger.Infof("analysis run %s complete: %d charts in %s", runID, len(renderer.Files()), cfg.Analysis.OutputDir)
	return nil
}

// histogram renders one histogram, reporting a notice instead when the
// series is empty. An empty partition is not an error.
func (a *App) histogram(rep *report.Report, r *charts.Renderer, slug string, values []float64, opts charts.HistogramOptions) error {
	if len(values) == 0 {
		rep.Note("skipping %s chart: empty series", slug)
		return nil
	}
	_, err := r.Histogram(slug, values, opts)
	return err
}

func (a *App) line(rep *report.Report, r *charts.Renderer, slug string, points []charts.Point, opts charts.LineOptions) error {
	if len(points) == 0 {
		rep.Note("skipping %s chart: empty series", slug)
		return nil
	}
	_, err := r.Line(slug, points, opts)
	return err
}

func (a *App) barh(rep *report.Report, r *charts.Renderer, slug string, categories []charts.CategoryValue, opts charts.BarHOptions) error {
	if len(categories) == 0 {
		rep.Note("skipping %s chart: empty series", slug)
		return nil
	}
	_, err := r.BarH(slug, categories, opts)
	return err
}

func groupPointsInt(groups []stats.IntGroupMean) []charts.Point {
	points := make([]charts.Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, charts.Point{X: float64(g.Key), Y: g.Mean})
	}
	return points
}

func categoryValues(groups []stats.StringGroupMean) []charts.CategoryValue {
	categories := make([]charts.CategoryValue, 0, len(groups))
	for _, g := range groups {
		categories = append(categories, charts.CategoryValue{Label: g.Key, Value: g.Mean})
	}
	return categories
}

type aggregateExports struct {
	describes     []report.LabeledSummary
	monthly       []stats.IntGroupMean
	julyByYear    []stats.IntGroupMean
	dayOfWeek     []stats.IntGroupMean
	weekdayHours  []stats.IntGroupMean
	weekendHours  []stats.IntGroupMean
	byMain        []stats.StringGroupMean
	byDescription []stats.StringGroupMean
	correlations  []report.CorrelationLine
}

// exportAggregates writes every aggregate table as CSV into dir and
// returns the file names written.
func exportAggregates(dir string, agg aggregateExports) ([]string, error) {
	var written []string

	write := func(name string, fn func(path string) error) error {
		path := filepath.Join(dir, name)
		if err := fn(path); err != nil {
			return fmt.Errorf("exporting %s: %w", name, err)
		}
		written = append(written, name)
		return nil
	}

	intTables := []struct {
		name      string
		keyHeader string
		groups    []stats.IntGroupMean
	}{
		{"monthly_volume.csv", "month", agg.monthly},
		{"july_volume_by_year.csv", "year", agg.julyByYear},
		{"dow_volume.csv", "day_of_week", agg.dayOfWeek},
		{"weekday_hourly_volume.csv", "hour", agg.weekdayHours},
		{"weekend_hourly_volume.csv", "hour", agg.weekendHours},
	}
	stringTables := []struct {
		name      string
		keyHeader string
		groups    []stats.StringGroupMean
	}{
		{"weather_main_volume.csv", "weather_main", agg.byMain},
		{"weather_description_volume.csv", "weather_description", agg.byDescription},
	}

	if err := write("describe.csv", func(path string) error {
		return report.ExportDescribes(path, agg.describes)
	}); err != nil {
		return nil, err
	}
	for _, t := range intTables {
		if err := write(t.name, func(path string) error {
			return report.ExportGroupMeansInt(path, t.keyHeader, t.groups)
		}); err != nil {
			return nil, err
		}
	}
	for _, t := range stringTables {
		if err := write(t.name, func(path string) error {
			return report.ExportGroupMeansString(path, t.keyHeader, t.groups)
		}); err != nil {
			return nil, err
		}
	}
	if err := write("correlations.csv", func(path string) error {
		return report.ExportCorrelations(path, agg.correlations)
	}); err != nil {
		return nil, err
	}

	return written, nil
}
