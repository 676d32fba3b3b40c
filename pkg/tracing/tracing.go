package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "durable-greetings"

// ConfigureZipkin installs a global tracer provider exporting to the given
// zipkin collector endpoint. The task hub emits orchestration and activity
// spans through the global provider.
func ConfigureZipkin(endpoint string) (*trace.TracerProvider, error) {
	exp, err := zipkin.New(endpoint)
	if err != nil {
		return nil, err
	}

	// NOTE: The simple span processor is not recommended for production.
	//       Instead, the batch span processor should be used for production.
	processor := trace.NewSimpleSpanProcessor(exp)

	tp := trace.NewTracerProvider(
		trace.WithSpanProcessor(processor),
		trace.WithSampler(trace.AlwaysSample()),
		trace.WithResource(resource.NewWithAttributes(
			"durabletask.io",
			attribute.KeyValue{Key: "service.name", Value: attribute.StringValue(serviceName)},
		)),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}
