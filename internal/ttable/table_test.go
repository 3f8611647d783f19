package ttable

import (
	"sync"
	"testing"

	"github.com/onoro-dev/onoro-solver/internal/score"
)

func TestGetMissingReturnsFalse(t *testing.T) {
	tt := New()
	if _, ok := tt.Get(42); ok {
		t.Fatal("expected miss on empty table")
	}
}

func TestUpdateInsertsAndRetrieves(t *testing.T) {
	tt := New()
	entry := tt.Update(7, Entry{Score: score.Win(3)})
	if entry.Score != score.Win(3) {
		t.Fatalf("got %v, want Win(3)", entry.Score)
	}
	got, ok := tt.Get(7)
	if !ok || got.Score != score.Win(3) {
		t.Fatalf("Get(7) = %v, %v", got, ok)
	}
	if tt.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tt.Len())
	}
}

func TestUpdateMergesOnConflict(t *testing.T) {
	tt := New()
	tt.Update(1, Entry{Score: score.Tie(2)})
	merged := tt.Update(1, Entry{Score: score.Tie(5)})
	want := score.Tie(2).Merge(score.Tie(5))
	if merged.Score != want {
		t.Fatalf("merged = %v, want %v", merged.Score, want)
	}
}

func TestConcurrentUpdatesDontLoseInformation(t *testing.T) {
	tt := New()
	const hash = uint64(99)
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			tt.Update(hash, Entry{Score: score.Tie(i)})
		}()
	}
	wg.Wait()
	got, ok := tt.Get(hash)
	if !ok {
		t.Fatal("expected an entry after concurrent updates")
	}
	if got.Score.TieDepth() != 50 {
		t.Fatalf("TieDepth() = %d, want 50 (deepest tie proof should survive merges)", got.Score.TieDepth())
	}
}
