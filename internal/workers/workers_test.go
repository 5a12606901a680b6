package workers

import "testing"

type countingWorker struct {
	runs int
}

func (w *countingWorker) Run() {
	w.runs++
}

func TestWorkersRunAll(t *testing.T) {
	first := &countingWorker{}
	second := &countingWorker{}

	NewWorkers(first, second).Run()

	if first.runs != 1 || second.runs != 1 {
		t.Errorf("expected each worker to run once, got %d and %d", first.runs, second.runs)
	}
}

func TestWorkersEmpty(t *testing.T) {
	// must not panic
	NewWorkers().Run()
}
