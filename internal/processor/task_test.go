package processor

import (
	"errors"
	"testing"
	"time"
)

// A failing run must deliver exactly one terminal event and close the
// event channel afterwards.
func TestTaskTerminalErrorEvent(t *testing.T) {
	task := Start("notes.txt", testConfig())

	var terminals int
	var lastErr error
	lastPercent := -1

	for ev := range task.Events() {
		switch ev := ev.(type) {
		case ProgressEvent:
			if ev.Percent < lastPercent {
				t.Errorf("progress went backwards: %d after %d", ev.Percent, lastPercent)
			}
			lastPercent = ev.Percent
		case ResultEvent:
			terminals++
			t.Errorf("unexpected result event for unsupported input: %+v", ev)
		case ErrorEvent:
			terminals++
			lastErr = ev.Err
		}
	}

	if terminals != 1 {
		t.Fatalf("got %d terminal events, want exactly 1", terminals)
	}
	if !errors.Is(lastErr, ErrUnsupportedFormat) {
		t.Errorf("terminal error = %v, want ErrUnsupportedFormat", lastErr)
	}

	result, err := task.Wait()
	if result != nil {
		t.Errorf("Wait() returned a result for a failed run: %+v", result)
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Wait() error = %v, want ErrUnsupportedFormat", err)
	}
}

// Wait is authoritative even when the consumer never reads events.
func TestTaskWaitWithoutDrainingEvents(t *testing.T) {
	task := Start("notes.txt", testConfig())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := task.Wait(); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Wait() error = %v, want ErrUnsupportedFormat", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait() blocked although no one drains the event channel")
	}
}

func TestTaskStatusEventsPrecedeTerminal(t *testing.T) {
	task := Start("notes.txt", testConfig())

	var sawStatus, sawTerminal bool
	for ev := range task.Events() {
		switch ev.(type) {
		case StatusEvent:
			if sawTerminal {
				t.Error("status event delivered after the terminal event")
			}
			sawStatus = true
		case ErrorEvent, ResultEvent:
			sawTerminal = true
		}
	}

	if !sawStatus {
		t.Error("no status events before the terminal event")
	}
	if !sawTerminal {
		t.Error("no terminal event delivered")
	}
}
