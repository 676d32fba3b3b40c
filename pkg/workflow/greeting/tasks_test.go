package greeting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubActivityContext struct {
	ctx context.Context
}

func (s stubActivityContext) GetInput(v any) error {
	return nil
}

func (s stubActivityContext) Context() context.Context {
	return s.ctx
}

func TestSayHelloReturnsGreeting(t *testing.T) {
	g := NewGreetingWorkflow()

	out, err := g.sayHello(stubActivityContext{ctx: context.Background()})
	require.NoError(t, err)
	require.Equal(t, "Hello world!", out)
}

func TestSayGoodbyeReturnsFarewell(t *testing.T) {
	g := NewGreetingWorkflow()

	out, err := g.sayGoodbye(stubActivityContext{ctx: context.Background()})
	require.NoError(t, err)
	require.Equal(t, "goodbye everyone", out)
}
