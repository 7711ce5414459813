package learning

import (
	"log"
	"os"
)

// SetLogger sets the output logger file where training progress is written
func (h *HyperParameters) SetLogger(filename string) {
	outfile, _ := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	h.l = log.New(outfile, "", 0)
}

type HyperParameters struct {
	LearningRate float64 // positive step size of each weight/bias adjustment

	Epochs int // number of full passes over the training set

	l *log.Logger
}

func (h *HyperParameters) logf(format string, v ...interface{}) {
	if h.l != nil {
		h.l.Printf(format, v...)
	}
}
