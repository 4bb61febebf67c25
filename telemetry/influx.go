package telemetry

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/store"
)

const measurement = "run_summary"

// PointWriter is the blocking write surface of the influx client
type PointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// Exporter writes one point per settled run
type Exporter struct {
	client influxdb2.Client
	writer PointWriter
	log    zerolog.Logger
}

// InfluxConfig addresses an InfluxDB v2 bucket
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// NewInfluxExporter connects to InfluxDB
// An unreachable server is logged and returns an error, callers run without export
func NewInfluxExporter(ctx context.Context, cfg InfluxConfig, log zerolog.Logger) (*Exporter, error) {
	client := influxdb2.NewClientWithOptions(cfg.URL, cfg.Token, influxdb2.DefaultOptions().SetHTTPRequestTimeout(5))
	running, err := client.Ping(ctx)
	if err != nil || !running {
		client.Close()
		if err == nil {
			err = fmt.Errorf("server not ready")
		}
		log.Warn().Err(err).Str("url", cfg.URL).Msg("InfluxDB unavailable, run export disabled")
		return nil, fmt.Errorf("ping influx %s: %w", cfg.URL, err)
	}
	log.Info().Str("url", cfg.URL).Str("bucket", cfg.Bucket).Msg("InfluxDB client initialized")
	return &Exporter{
		client: client,
		writer: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:    log,
	}, nil
}

// NewExporter wraps an arbitrary writer
func NewExporter(w PointWriter, log zerolog.Logger) *Exporter {
	return &Exporter{writer: w, log: log}
}

// RunPoint renders a run record as a run_summary point
func RunPoint(r store.RunRecord) *write.Point {
	ts := r.EndedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return influxdb2.NewPoint(measurement,
		map[string]string{
			"zone": string(r.Zone),
			"died": fmt.Sprintf("%t", r.Died),
		},
		map[string]interface{}{
			"run_id":  r.ID.String(),
			"time_s":  r.Time,
			"kills":   r.Kills,
			"level":   r.Level,
			"earned":  r.Earned,
			"weapons": len(r.Loadout),
		},
		ts,
	)
}

// Export writes the run summary
func (e *Exporter) Export(ctx context.Context, r store.RunRecord) error {
	if err := e.writer.WritePoint(ctx, RunPoint(r)); err != nil {
		e.log.Error().Err(err).Str("run", r.ID.String()).Msg("Failed to export run summary")
		return fmt.Errorf("export run %s: %w", r.ID, err)
	}
	return nil
}

func (e *Exporter) Close() {
	if e.client != nil {
		e.client.Close()
	}
}
