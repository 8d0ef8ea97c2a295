package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/storefront-api/internal/shared/resource"
	"github.com/Apurer/storefront-api/internal/shared/resource/application"
)

type gadget struct {
	Name string
}

func (g gadget) Validate() error {
	if g.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func newDecorated(t *testing.T) (resource.Service[gadget], *tracetest.SpanRecorder, *sdkmetric.ManualReader, *bytes.Buffer) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	inner := application.NewService[gadget](resource.NewStore[gadget]())
	svc := New[gadget](inner, "gadget",
		WithTracer(tp.Tracer("test")),
		WithMeter(mp.Meter("test")),
		WithLogger(logger),
	)
	return svc, recorder, reader, buf
}

func TestDecoratorRecordsSpansAndCounters(t *testing.T) {
	ctx := context.Background()
	svc, recorder, reader, logs := newDecorated(t)

	created, err := svc.Create(ctx, gadget{Name: "spinner"})
	require.NoError(t, err)
	removed, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "GadgetService.Create", spans[0].Name())
	require.Equal(t, "GadgetService.Delete", spans[1].Name())
	require.Contains(t, logs.String(), "gadget created")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	require.True(t, names["gadget.service.created"])
	require.True(t, names["gadget.service.deleted"])
}

func TestDecoratorMarksSpanOnError(t *testing.T) {
	svc, recorder, _, logs := newDecorated(t)

	_, err := svc.Get(context.Background(), "404")
	require.ErrorIs(t, err, resource.ErrNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.Contains(t, logs.String(), "failed to load gadget")
}

func TestDecoratorDefaultsToNoop(t *testing.T) {
	svc := New[gadget](application.NewService[gadget](resource.NewStore[gadget]()), "gadget")

	page, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Empty(t, page.Items)
}
