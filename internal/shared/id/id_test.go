package id

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator()
	assert.NotEqual(t, gen.Generate().String(), gen.Generate().String())
}

func TestTypedIDs(t *testing.T) {
	inv := NewInvocationID()
	run := NewRunID()

	assert.True(t, strings.HasPrefix(inv.String(), "inv_"))
	assert.True(t, strings.HasPrefix(run.String(), "run_"))

	parts := strings.Split(inv.String(), "_")
	require.Len(t, parts, 2)
	_, err := ulid.Parse(parts[1])
	assert.NoError(t, err)
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	inv := NewInvocationID()

	ts, err := Timestamp(inv.String())
	require.NoError(t, err)
	assert.True(t, ts.After(before))

	_, err = Timestamp("inv_not-a-ulid")
	assert.Error(t, err)
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()
	const n = 200

	var mu sync.Mutex
	seen := make(map[string]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := gen.GenerateWithPrefix(InvocationPrefix)
			mu.Lock()
			seen[s] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}
