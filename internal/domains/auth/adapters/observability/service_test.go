package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

type stubService struct {
	authports.Service
	fail bool
}

func (s stubService) Login(context.Context, string, string) (authports.Session, error) {
	if s.fail {
		return authports.Session{}, authports.ErrInvalidCredentials
	}
	return authports.Session{User: projection.Projection[userdomain.User]{ID: "7"}}, nil
}

func TestLoginOutcomesAreCounted(t *testing.T) {
	ctx := context.Background()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	logs := &bytes.Buffer{}
	opts := []Option{WithTracer(tp.Tracer("test")), WithMeter(mp.Meter("test")), WithLogger(slog.New(slog.NewJSONHandler(logs, nil)))}

	_, err := New(stubService{}, opts...).Login(ctx, "a@example.com", "password")
	require.NoError(t, err)
	_, err = New(stubService{fail: true}, opts...).Login(ctx, "a@example.com", "nope")
	require.ErrorIs(t, err, authports.ErrInvalidCredentials)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "AuthService.Login", spans[1].Name())
	require.Equal(t, codes.Error, spans[1].Status().Code)
	require.Contains(t, logs.String(), `"level":"WARN"`)
	require.NotContains(t, logs.String(), "a@example.com")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "auth.logins" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			require.Len(t, sum.DataPoints, 2)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	require.Equal(t, int64(2), total)
}
