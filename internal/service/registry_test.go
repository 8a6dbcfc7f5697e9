package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mathProvider "github.com/GriffinCanCode/calculator/internal/providers/math"
	"github.com/GriffinCanCode/calculator/internal/testutil"
	"github.com/GriffinCanCode/calculator/internal/types"
)

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "test", types.CategoryStatistics)

	require.NoError(t, r.Register(p))

	_, ok := r.Get("test")
	assert.True(t, ok, "service should be registered")

	t.Run("Duplicate", func(t *testing.T) {
		assert.Error(t, r.Register(testutil.NewMockServiceProvider(t, "test", types.CategoryMath)))
	})

	t.Run("Empty ID", func(t *testing.T) {
		assert.Error(t, r.Register(testutil.NewMockServiceProvider(t, "", types.CategoryMath)))
	})

	t.Run("Dotted ID", func(t *testing.T) {
		assert.Error(t, r.Register(testutil.NewMockServiceProvider(t, "a.b", types.CategoryMath)))
	})

	t.Run("Unregister", func(t *testing.T) {
		r.Unregister("test")
		_, ok := r.Get("test")
		assert.False(t, ok)
	})
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "zeta", types.CategoryFinance)))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "alpha", types.CategoryFinance)))
	require.NoError(t, r.Register(mathProvider.NewProvider()))

	services := r.List(nil)
	require.Len(t, services, 3)
	assert.Equal(t, "alpha", services[0].ID)
	assert.Equal(t, "math", services[1].ID)
	assert.Equal(t, "zeta", services[2].ID)

	cat := types.CategoryFinance
	assert.Len(t, r.List(&cat), 2)
}

func TestTools(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(mathProvider.NewProvider()))

	tools := r.Tools()
	require.NotEmpty(t, tools)
	for i := 1; i < len(tools); i++ {
		assert.Less(t, tools[i-1].ID, tools[i].ID)
	}
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(mathProvider.NewProvider()))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "storage", types.CategoryStatistics)))

	results := r.Discover("statistics and finance math", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "math", results[0].ID)

	assert.Empty(t, r.Discover("xyzzy", 5))
}

func TestDiscoverTools(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(mathProvider.NewProvider()))

	tests := []struct {
		intent string
		want   string
	}{
		{"square root", "math.sqrt"},
		{"compound interest", "math.compoundInterest"},
		{"fibonacci", "math.fibonacci"},
		{"celsius to fahrenheit", "math.celsiusToFahrenheit"},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			tools := r.DiscoverTools(tt.intent, 3)
			require.NotEmpty(t, tools)
			assert.Equal(t, tt.want, tools[0].ID)
		})
	}

	assert.Len(t, r.DiscoverTools("number", 2), 2)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "test", types.CategoryMath)
	p.On("Execute", mock.Anything, "test.test", mock.Anything, mock.Anything).
		Return(&types.Result{Success: true, Data: map[string]interface{}{"result": "success"}}, nil)
	require.NoError(t, r.Register(p))

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	p.AssertExpectations(t)

	t.Run("Routes to math provider", func(t *testing.T) {
		require.NoError(t, r.Register(mathProvider.NewProvider()))
		result, err := r.Execute(ctx, "math.gcd", map[string]interface{}{"a": 48.0, "b": 18.0}, nil)
		require.NoError(t, err)
		assert.Equal(t, 6, result.Data["result"])
	})

	t.Run("Malformed ID", func(t *testing.T) {
		result, err := r.Execute(ctx, "nodot", nil, nil)
		assert.Error(t, err)
		assert.Equal(t, types.CodeUnknownTool, result.Code)
	})

	t.Run("Unknown service", func(t *testing.T) {
		result, err := r.Execute(ctx, "geo.distance", nil, nil)
		assert.Error(t, err)
		assert.False(t, result.Success)
	})
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "test1", types.CategoryMath)))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "test2", types.CategoryFinance)))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"math": 1, "finance": 1}, stats["categories"])
}
