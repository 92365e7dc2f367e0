package chain

import (
	"math/rand"
	"slices"
	"sort"
	"testing"
)

type entry struct{ id int }

func collect[E comparable](c *Chain[E]) []E {
	var out []E
	for e := range c.All() {
		out = append(out, e)
	}
	return out
}

// TestZeroValueUsable verifies a zero Chain accepts inserts
func TestZeroValueUsable(t *testing.T) {
	var c Chain[int]
	if c.Len() != 0 {
		t.Errorf("Expected empty chain, got %d", c.Len())
	}
	if c.Remove(1) {
		t.Error("Remove on empty chain reported success")
	}
	c.Insert(1, 0)
	if !c.Contains(1) || c.Len() != 1 {
		t.Errorf("Expected chain to contain 1, len=%d", c.Len())
	}
}

// TestTraversalOrder verifies descending priority with FIFO ties
func TestTraversalOrder(t *testing.T) {
	c := New[string]()
	c.Insert("a", 0)
	c.Insert("b", 10)
	c.Insert("c", 0)
	c.Insert("d", PriorityMax)
	c.Insert("e", PriorityMin)
	c.Insert("f", 10)

	got := collect(c)
	want := []string{"d", "b", "f", "a", "c", "e"}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if c.Buckets() != 4 {
		t.Errorf("Expected 4 buckets, got %d", c.Buckets())
	}
}

// TestFIFOUnderInterleavedMutation verifies tie order survives remove/insert churn
func TestFIFOUnderInterleavedMutation(t *testing.T) {
	c := New[int]()
	for i := 1; i <= 5; i++ {
		c.Insert(i, 7)
	}
	c.Remove(2)
	c.Remove(4)
	c.Insert(6, 7)
	c.Insert(2, 7)
	c.Remove(1)
	c.Insert(7, 7)

	want := []int{3, 5, 6, 2, 7}
	if got := collect(c); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestReinsertMovesToEnd verifies re-prioritising appends after existing equals
func TestReinsertMovesToEnd(t *testing.T) {
	c := New[int]()
	c.Insert(1, 5)
	c.Insert(2, 5)
	c.Insert(3, 1)

	c.Insert(1, 1)
	if got := collect(c); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("Expected [2 3 1], got %v", got)
	}
	if p, ok := c.Priority(1); !ok || p != 1 {
		t.Errorf("Expected priority 1, got %d (ok=%v)", p, ok)
	}
	if c.Len() != 3 {
		t.Errorf("Expected len 3 after move, got %d", c.Len())
	}

	// Same priority re-insert also re-appends
	c.Insert(2, 5)
	c.Insert(3, 1)
	if got := collect(c); !slices.Equal(got, []int{2, 1, 3}) {
		t.Errorf("Expected [2 1 3], got %v", got)
	}
}

// TestRemoveIdempotent verifies repeated and unknown removals are no-ops
func TestRemoveIdempotent(t *testing.T) {
	c := New[int]()
	c.Insert(1, 0)
	if !c.Remove(1) {
		t.Error("First remove should succeed")
	}
	if c.Remove(1) {
		t.Error("Second remove should be a no-op")
	}
	if c.Remove(42) {
		t.Error("Removing unknown entry should be a no-op")
	}
	if c.Buckets() != 0 {
		t.Errorf("Expected emptied bucket to be dropped, got %d buckets", c.Buckets())
	}
	if _, ok := c.Priority(1); ok {
		t.Error("Removed entry still reports a priority")
	}
}

// TestTruePriority verifies true priorities are injective and reproduce visit order
func TestTruePriority(t *testing.T) {
	c := New[int]()
	c.Insert(1, 0)
	c.Insert(2, 0)
	c.Insert(3, 1)
	c.Insert(4, 0)
	c.Insert(5, PriorityMin)
	c.Insert(6, PriorityMin)
	c.Insert(7, PriorityMax)
	c.Insert(8, -1)

	order := collect(c)
	type ranked struct {
		e  int
		tp float64
	}
	ranks := make([]ranked, 0, len(order))
	seen := make(map[float64]bool)
	for _, e := range order {
		tp, ok := c.TruePriority(e)
		if !ok {
			t.Fatalf("Entry %d missing true priority", e)
		}
		if seen[tp] {
			t.Errorf("Duplicate true priority %v", tp)
		}
		seen[tp] = true
		ranks = append(ranks, ranked{e, tp})
	}

	sort.Slice(ranks, func(i, j int) bool { return ranks[i].tp > ranks[j].tp })
	for i, r := range ranks {
		if r.e != order[i] {
			t.Fatalf("Sorted true priorities diverge at %d: expected %d, got %d", i, order[i], r.e)
		}
	}

	// Head of a bucket keeps the nominal priority
	if tp, _ := c.TruePriority(1); tp != 0 {
		t.Errorf("Expected head true priority 0, got %v", tp)
	}
	// Offsets never reach the next bucket down
	if tp, _ := c.TruePriority(4); tp <= -1 {
		t.Errorf("Expected tail offset above -1, got %v", tp)
	}
	if _, ok := c.TruePriority(99); ok {
		t.Error("Unknown entry reported a true priority")
	}
}

// TestTruePriorityLargeBucket verifies injectivity for buckets past small powers of two
func TestTruePriorityLargeBucket(t *testing.T) {
	c := New[int]()
	const n = 1000
	for i := 0; i < n; i++ {
		c.Insert(i, PriorityMax)
	}
	c.Insert(n, PriorityMax-1)

	prev, _ := c.TruePriority(0)
	for i := 1; i <= n; i++ {
		tp, _ := c.TruePriority(i)
		if tp >= prev {
			t.Fatalf("Entry %d: true priority %v not below %v", i, tp, prev)
		}
		prev = tp
	}
}

// TestMutationDuringAllPanics verifies the live iterator guard
func TestMutationDuringAllPanics(t *testing.T) {
	c := New[int]()
	c.Insert(1, 0)
	c.Insert(2, 0)

	defer func() {
		r := recover()
		if r != ErrMutatedDuringIteration {
			t.Errorf("Expected ErrMutatedDuringIteration panic, got %v", r)
		}
	}()
	for e := range c.All() {
		c.Remove(e)
	}
	t.Error("Expected panic")
}

// TestSnapshotAllowsMutation verifies snapshots are detached from the chain
func TestSnapshotAllowsMutation(t *testing.T) {
	c := New[int]()
	for i := 0; i < 4; i++ {
		c.Insert(i, Priority(i%2))
	}
	snap := c.Snapshot(nil)
	for _, e := range snap {
		c.Remove(e)
	}
	if !slices.Equal(snap, []int{1, 3, 0, 2}) {
		t.Errorf("Expected [1 3 0 2], got %v", snap)
	}
	if c.Len() != 0 || c.Buckets() != 0 {
		t.Errorf("Expected empty chain, len=%d buckets=%d", c.Len(), c.Buckets())
	}
}

// TestAllEarlyBreak verifies the iterator honours early termination
func TestAllEarlyBreak(t *testing.T) {
	c := New[int]()
	for i := 0; i < 5; i++ {
		c.Insert(i, 0)
	}
	count := 0
	for range c.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("Expected 2 iterations, got %d", count)
	}
}

// TestRandomAgainstModel checks chain order against a stable-sorted reference
func TestRandomAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	type rec struct {
		e   int
		p   Priority
		seq int
	}
	c := New[int]()
	model := make(map[int]rec)
	seq := 0

	for step := 0; step < 5000; step++ {
		e := rng.Intn(64)
		switch rng.Intn(3) {
		case 0, 1:
			p := Priority(rng.Intn(7) - 3)
			c.Insert(e, p)
			seq++
			model[e] = rec{e, p, seq}
		case 2:
			_, had := model[e]
			if c.Remove(e) != had {
				t.Fatalf("Step %d: remove(%d) disagreed with model", step, e)
			}
			delete(model, e)
		}

		if step%97 != 0 {
			continue
		}
		want := make([]rec, 0, len(model))
		for _, r := range model {
			want = append(want, r)
		}
		sort.Slice(want, func(i, j int) bool {
			if want[i].p != want[j].p {
				return want[i].p > want[j].p
			}
			return want[i].seq < want[j].seq
		})
		got := collect(c)
		if len(got) != len(want) {
			t.Fatalf("Step %d: expected %d entries, got %d", step, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i].e {
				t.Fatalf("Step %d: position %d expected %d, got %d", step, i, want[i].e, got[i])
			}
		}
	}
}

// TestPointerEntries verifies identity semantics for pointer entries
func TestPointerEntries(t *testing.T) {
	c := New[*entry]()
	a, b := &entry{1}, &entry{1}
	c.Insert(a, 0)
	c.Insert(b, 0)
	if c.Len() != 2 {
		t.Errorf("Expected distinct pointers to be distinct entries, got len %d", c.Len())
	}
	c.Remove(a)
	if !c.Contains(b) || c.Contains(a) {
		t.Error("Remove affected the wrong entry")
	}
}
