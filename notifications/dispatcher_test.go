package notifications

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSender struct {
	mu       sync.Mutex
	failures int
	calls    []string
}

func (f *fakeSender) send(toName, toEmail, subject, htmlContent string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, toEmail)
	if f.failures > 0 {
		f.failures--
		return errors.New("provider unavailable")
	}
	return nil
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitForCalls(t *testing.T, f *fakeSender, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.callCount() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d sends, got %d", want, f.callCount())
}

func TestDispatcherDelivers(t *testing.T) {
	f := &fakeSender{}
	d := newDispatcher(f, 8)

	d.Send("Principal", "p@x.com", "subject", "<p>hi</p>")
	waitForCalls(t, f, 1)
}

func TestDispatcherRetriesOnce(t *testing.T) {
	f := &fakeSender{failures: 1}
	d := newDispatcher(f, 8)

	d.Send("Principal", "p@x.com", "subject", "<p>hi</p>")
	waitForCalls(t, f, 2)
}

func TestDispatcherGivesUpAfterRetry(t *testing.T) {
	f := &fakeSender{failures: 2}
	d := newDispatcher(f, 8)

	d.Send("Principal", "p@x.com", "subject", "<p>hi</p>")
	d.Send("Principal", "q@x.com", "next", "<p>hi</p>")

	// first job: two failed attempts, second job: one success
	waitForCalls(t, f, 3)
	time.Sleep(50 * time.Millisecond)
	if got := f.callCount(); got != 3 {
		t.Fatalf("expected 3 sends total, got %d", got)
	}
}

func TestDispatcherUnconfiguredDropsQuietly(t *testing.T) {
	d := newDispatcher(nil, 8)
	d.Send("Principal", "p@x.com", "subject", "<p>hi</p>") // must not panic or block
}
