package beam

import (
	"strings"
	"testing"
	"time"
)

func TestSpawn_EarlyThenFinal(t *testing.T) {
	t.Parallel()

	early, ok, job := Spawn(func(tx *Sender[string]) string {
		tx.Send("early")
		time.Sleep(10 * time.Millisecond)
		return "final"
	})

	if !ok || early != "early" {
		t.Fatalf("expected ('early', true), got (%q, %v)", early, ok)
	}

	final, err := job.Join()
	if err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
	if final != "final" {
		t.Fatalf("expected 'final', got %q", final)
	}
}

func TestSpawn_TaskNeverSends(t *testing.T) {
	t.Parallel()

	early, ok, job := Spawn(func(tx *Sender[int]) string {
		return "done anyway"
	})

	if ok {
		t.Fatalf("expected no early value, got %d", early)
	}

	final, err := job.Join()
	if err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
	if final != "done anyway" {
		t.Fatalf("expected 'done anyway', got %q", final)
	}
}

func TestSpawn_TaskPanics(t *testing.T) {
	t.Parallel()

	early, ok, job := Spawn(func(tx *Sender[string]) int {
		panic("task blew up")
	})

	if ok {
		t.Fatalf("expected no early value, got %q", early)
	}

	_, err := job.Join()
	if err == nil || !strings.Contains(err.Error(), "task blew up") {
		t.Fatalf("expected panic error, got %v", err)
	}
}

func TestSpawn_PanicAfterSend(t *testing.T) {
	t.Parallel()

	early, ok, job := Spawn(func(tx *Sender[string]) int {
		tx.Send("made it out")
		panic("then crashed")
	})

	if !ok || early != "made it out" {
		t.Fatalf("expected ('made it out', true), got (%q, %v)", early, ok)
	}
	if _, err := job.Join(); err == nil {
		t.Fatalf("expected panic error from join")
	}
}

func TestJoinHandle_Done(t *testing.T) {
	t.Parallel()

	_, _, job := Spawn(func(tx *Sender[int]) int {
		tx.Send(1)
		return 2
	})

	select {
	case <-job.Done():
	case <-time.After(time.Second):
		t.Fatalf("task did not finish in time")
	}

	final, err := job.Join()
	if err != nil || final != 2 {
		t.Fatalf("expected (2, nil), got (%d, %v)", final, err)
	}
}
