package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get("snake.length")
	b := reg.Ints.Get("snake.length")
	if a != b {
		t.Fatal("Expected Get to return the same pointer for the same key")
	}

	a.Store(7)
	if b.Load() != 7 {
		t.Errorf("Expected 7 through cached pointer, got %d", b.Load())
	}
}

func TestMetricMapConcurrentRegistration(t *testing.T) {
	m := NewMetricMap[int]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared")
		}()
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestRegistryValues(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("engine.ticks").Store(42)
	reg.Bools.Get("snake.crashed").Store(true)
	reg.Bools.Get("audio.muted")

	vals := reg.Values()
	if vals["engine.ticks"] != 42 {
		t.Errorf("Expected engine.ticks=42, got %d", vals["engine.ticks"])
	}
	if vals["snake.crashed"] != 1 {
		t.Errorf("Expected snake.crashed=1, got %d", vals["snake.crashed"])
	}
	if v, ok := vals["audio.muted"]; !ok || v != 0 {
		t.Errorf("Expected audio.muted=0, got %d (present=%v)", v, ok)
	}
	if reg.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", reg.TotalCount())
	}
}

func TestRangeSortedOrder(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(key string, _ *int) {
		keys = append(keys, key)
	})

	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %d to be %q, got %q", i, want[i], keys[i])
		}
	}
}
