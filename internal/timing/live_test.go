package timing

import (
	"sync"
	"testing"
	"time"
)

func TestLiveSetAndGet(t *testing.T) {
	l := NewLive(300*time.Millisecond, 0)
	if l.Note() != 300*time.Millisecond {
		t.Errorf("Note() = %v, want 300ms", l.Note())
	}
	if l.Gap() != 0 {
		t.Errorf("Gap() = %v, want 0", l.Gap())
	}

	l.Set(100*time.Millisecond, 20*time.Millisecond)
	if l.Note() != 100*time.Millisecond || l.Gap() != 20*time.Millisecond {
		t.Errorf("after Set: note=%v gap=%v", l.Note(), l.Gap())
	}
}

func TestLiveConcurrentAccess(t *testing.T) {
	l := NewLive(time.Millisecond, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			l.Set(time.Duration(n)*time.Millisecond, 0)
		}(i + 1)
		go func() {
			defer wg.Done()
			_ = l.Note()
			_ = l.Gap()
		}()
	}
	wg.Wait()

	if l.Note() <= 0 {
		t.Errorf("Note() = %v, want positive", l.Note())
	}
}
