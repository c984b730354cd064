package middleware

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer(t *testing.T) {
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }

	t.Run("without base", func(t *testing.T) {
		mc := NewContainer()
		mc.Add(noop)
		mc.Add(noop)

		first := mc.GetAllAndClear()
		assert.Len(t, first, 2)
		assert.Empty(t, mc.GetAllAndClear())
	})

	t.Run("base is repeated in every set", func(t *testing.T) {
		mc := NewContainer(noop)
		assert.Len(t, mc.GetAllAndClear(), 1)

		mc.Add(noop)
		assert.Len(t, mc.GetAllAndClear(), 2)
		assert.Len(t, mc.GetAllAndClear(), 1)
	})
}

func TestContainer_Order(t *testing.T) {
	var calls []string
	mark := func(name string) func(huma.Context, func(huma.Context)) {
		return func(ctx huma.Context, next func(huma.Context)) {
			calls = append(calls, name)
			next(ctx)
		}
	}

	mc := NewContainer(mark("base"))
	mc.Add(mark("first"))
	mc.Add(mark("second"))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      "GET",
		Path:        "/ping",
		Middlewares: mc.GetAllAndClear(),
	}, func(_ context.Context, _ *struct{}) (*struct{}, error) {
		return nil, nil
	})

	resp := api.Get("/ping")
	require.Less(t, resp.Code, 300)
	assert.Equal(t, []string{"base", "first", "second"}, calls)
}
