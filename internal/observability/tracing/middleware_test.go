package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// installExporter swaps in an in-memory exporter and rebinds the package
// tracer to it. Restores the default provider when the test ends.
func installExporter(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("newsdesk")
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		tracer = otel.Tracer("newsdesk")
	})
	return exporter, tp
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestMiddleware_RecordsSpan(t *testing.T) {
	exporter, tp := installExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serve(handler, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("span count = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name != "GET /api/articles" {
		t.Errorf("span name = %q, want %q", span.Name, "GET /api/articles")
	}

	want := map[string]string{"http.method": "GET", "http.path": "/api/articles"}
	for _, attr := range span.Attributes {
		if expected, ok := want[string(attr.Key)]; ok {
			if attr.Value.AsString() != expected {
				t.Errorf("%s = %q, want %q", attr.Key, attr.Value.AsString(), expected)
			}
			delete(want, string(attr.Key))
		}
		if attr.Key == "http.status_code" && attr.Value.AsInt64() != 200 {
			t.Errorf("http.status_code = %d, want 200", attr.Value.AsInt64())
		}
	}
	for key := range want {
		t.Errorf("attribute %s missing", key)
	}
}

func TestMiddleware_EchoesTraceID(t *testing.T) {
	installExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := serve(handler, httptest.NewRequest(http.MethodGet, "/api/hello", nil))

	traceID := rr.Header().Get("X-Trace-Id")
	if traceID == "" {
		t.Fatal("X-Trace-Id header missing")
	}
	// W3C trace IDは32桁の16進
	if len(traceID) != 32 {
		t.Errorf("trace ID length = %d, want 32", len(traceID))
	}
}

func TestMiddleware_PropagatesIncomingTraceContext(t *testing.T) {
	exporter, tp := installExporter(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
	})

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	serve(handler, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("span count = %d, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the propagated one", got)
	}
}

func TestMiddleware_FlagsServerErrors(t *testing.T) {
	exporter, tp := installExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	serve(handler, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("span count = %d, want 1", len(spans))
	}
	flagged := false
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" && attr.Value.AsBool() {
			flagged = true
		}
	}
	if !flagged {
		t.Error("error attribute missing for 5xx response")
	}
}

func TestMiddleware_NoErrorFlagForClientErrors(t *testing.T) {
	exporter, tp := installExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	serve(handler, httptest.NewRequest(http.MethodGet, "/api/articles/missing", nil))
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("span count = %d, want 1", len(spans))
	}
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" {
			t.Error("unexpected error attribute for 4xx response")
		}
	}
}
