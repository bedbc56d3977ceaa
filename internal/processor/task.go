package processor

// Event is a notification from a running task. Exactly one terminal event
// (ResultEvent or ErrorEvent) is delivered per run, after which the event
// channel is closed.
type Event interface {
	isEvent()
}

// ProgressEvent reports overall completion, 0-100, non-decreasing.
type ProgressEvent struct {
	Percent int
}

// StatusEvent reports a human-readable phase name.
type StatusEvent struct {
	Message string
}

// ResultEvent is the terminal event of a successful run.
type ResultEvent struct {
	OutputPath string
	Result     *Result
}

// ErrorEvent is the terminal event of a failed run.
type ErrorEvent struct {
	Err error
}

func (ProgressEvent) isEvent() {}
func (StatusEvent) isEvent()   {}
func (ResultEvent) isEvent()   {}
func (ErrorEvent) isEvent()    {}

// Task is a handle to one in-flight processing run. Events are delivered
// on a buffered channel; sends never block the worker, so a consumer that
// stops reading loses progress updates but never stalls the run. Wait is
// always authoritative for the final outcome.
type Task struct {
	events chan Event
	done   chan struct{}

	result *Result
	err    error
}

// Start launches a processing run on its own goroutine and returns its
// handle. One task owns the input file for the whole run; callers wanting
// to process several files start tasks one after another.
func Start(inputPath string, cfg *Config) *Task {
	t := &Task{
		events: make(chan Event, 128),
		done:   make(chan struct{}),
	}
	go t.run(inputPath, cfg)
	return t
}

// Events returns the channel of run notifications. It is closed after the
// terminal event.
func (t *Task) Events() <-chan Event {
	return t.events
}

// Wait blocks until the run finishes and returns its outcome.
func (t *Task) Wait() (*Result, error) {
	<-t.done
	return t.result, t.err
}

func (t *Task) run(inputPath string, cfg *Config) {
	lastPercent := -1
	lastStatus := ""

	result, err := Process(inputPath, cfg, func(percent int, status string) {
		if percent != lastPercent {
			lastPercent = percent
			t.send(ProgressEvent{Percent: percent})
		}
		if status != lastStatus {
			lastStatus = status
			t.send(StatusEvent{Message: status})
		}
	})

	t.result = result
	t.err = err

	if err != nil {
		t.send(ErrorEvent{Err: err})
	} else {
		t.send(ResultEvent{OutputPath: result.OutputPath, Result: result})
	}
	close(t.events)
	close(t.done)
}

// send is fire-and-forget: if the buffer is full the event is dropped
// rather than blocking the worker.
func (t *Task) send(ev Event) {
	select {
	case t.events <- ev:
	default:
	}
}
