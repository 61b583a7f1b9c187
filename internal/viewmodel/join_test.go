package viewmodel

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestJoinPreservesOrder(t *testing.T) {
	ids := []int{5, 1, 9, 3, 7}

	out, defaulted := Join(context.Background(), ids,
		func(_ context.Context, id int) (string, error) {
			// Finishing out of order must not reorder the result.
			time.Sleep(time.Duration(id) * time.Millisecond)
			return fmt.Sprintf("v%d", id), nil
		}, 4)

	assert.Zero(t, defaulted)
	want := []string{"v5", "v1", "v9", "v3", "v7"}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinPartialFailureDefaults(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5}

	out, defaulted := Join(context.Background(), ids,
		func(_ context.Context, id int) (int, error) {
			if id == 3 {
				return 0, fmt.Errorf("lookup %d: gone", id)
			}
			return id * 10, nil
		}, DefaultJoinLimit)

	// One failed lookup defaults its slot; the other four survive.
	assert.Equal(t, 1, defaulted)
	assert.Equal(t, []int{10, 20, 0, 40, 50}, out)
}

func TestJoinRespectsLimit(t *testing.T) {
	var inFlight, peak int64
	var mu sync.Mutex

	ids := make([]int, 30)
	Join(context.Background(), ids,
		func(_ context.Context, _ int) (int, error) {
			n := atomic.AddInt64(&inFlight, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			return 0, nil
		}, 4)

	assert.LessOrEqual(t, peak, int64(4))
}

func TestJoinEmpty(t *testing.T) {
	out, defaulted := Join[int, string](context.Background(), nil, nil, 0)
	assert.Empty(t, out)
	assert.Zero(t, defaulted)
}

func TestCountByKey(t *testing.T) {
	type sale struct{ product string }
	sales := []sale{{"Laptop"}, {"Laptop"}, {"Phone"}}

	counts := CountByKey(sales, func(s sale) string { return s.product })
	assert.Equal(t, []int{2, 2, 1}, counts)
}

func TestCountByKeyEmpty(t *testing.T) {
	counts := CountByKey(nil, func(s string) string { return s })
	assert.Empty(t, counts)
}
