package workers

// Workers aggregates background workers so the application can start
// them all with a single call.
type Workers struct {
	workers []Worker
}

func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
