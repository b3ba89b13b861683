package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter exports library gauges and provider call counters in Prometheus format.
// It also satisfies enrichment.Observer.
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	meter             metric.Meter
	booksGauge        metric.Int64ObservableGauge
	ratedGauge        metric.Int64ObservableGauge
	collectionsGauge  metric.Int64ObservableGauge
	membershipsGauge  metric.Int64ObservableGauge
	providerCalls     metric.Int64Counter
	providerDurations metric.Float64Histogram
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with its own Prometheus registry
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"bookshelf",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.booksGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.books",
		metric.WithDescription("Number of books per reading status"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeStatusCounts),
	)
	if err != nil {
		return fmt.Errorf("creating books gauge: %w", err)
	}

	oe.ratedGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.books.rated",
		metric.WithDescription("Number of books with a rating"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeRated),
	)
	if err != nil {
		return fmt.Errorf("creating rated gauge: %w", err)
	}

	oe.collectionsGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.collections",
		metric.WithDescription("Number of collections"),
		metric.WithUnit("{collections}"),
		metric.WithInt64Callback(oe.observeCollections),
	)
	if err != nil {
		return fmt.Errorf("creating collections gauge: %w", err)
	}

	oe.membershipsGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.memberships",
		metric.WithDescription("Number of book/collection memberships"),
		metric.WithUnit("{memberships}"),
		metric.WithInt64Callback(oe.observeMemberships),
	)
	if err != nil {
		return fmt.Errorf("creating memberships gauge: %w", err)
	}

	oe.providerCalls, err = oe.meter.Int64Counter(
		"bookshelf.provider.calls",
		metric.WithDescription("Metadata provider and cache calls by outcome"),
		metric.WithUnit("{calls}"),
	)
	if err != nil {
		return fmt.Errorf("creating provider calls counter: %w", err)
	}

	oe.providerDurations, err = oe.meter.Float64Histogram(
		"bookshelf.provider.duration",
		metric.WithDescription("Metadata provider call latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating provider duration histogram: %w", err)
	}

	return nil
}

func (oe *OTelExporter) observeStatusCounts(ctx context.Context, observer metric.Int64Observer) error {
	statusCounts, err := oe.collector.GetStatusCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range statusCounts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("book.status", status),
		))
	}

	return nil
}

func (oe *OTelExporter) observeRated(ctx context.Context, observer metric.Int64Observer) error {
	n, err := oe.collector.GetRatedCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(n)
	return nil
}

func (oe *OTelExporter) observeCollections(ctx context.Context, observer metric.Int64Observer) error {
	n, err := oe.collector.GetCollectionCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(n)
	return nil
}

func (oe *OTelExporter) observeMemberships(ctx context.Context, observer metric.Int64Observer) error {
	n, err := oe.collector.GetMembershipCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(n)
	return nil
}

// ProviderCall records one provider or cache call.
func (oe *OTelExporter) ProviderCall(ctx context.Context, provider, operation, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	oe.providerCalls.Add(ctx, 1, attrs)
	oe.providerDurations.Record(ctx, elapsed.Seconds(), attrs)
}

// ServeHTTP returns the Prometheus scrape handler for this exporter's registry
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
