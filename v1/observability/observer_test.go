package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiSkipsNilAndPreservesOrder(t *testing.T) {
	var calls []string

	first := ObserverFunc(func(ctx OperationContext) { calls = append(calls, "first:"+ctx.Operation) })
	second := ObserverFunc(func(ctx OperationContext) { calls = append(calls, "second:"+ctx.Operation) })

	obs := Multi(first, nil, second)
	obs.ObserveOperation(OperationContext{
		Component: "oembed",
		Operation: "fetch",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	require.Len(t, calls, 2)
	assert.Equal(t, []string{"first:fetch", "second:fetch"}, calls)
}

func TestMultiWithNoObservers(t *testing.T) {
	// Should not panic.
	Multi().ObserveOperation(OperationContext{Component: "oembed"})
}
