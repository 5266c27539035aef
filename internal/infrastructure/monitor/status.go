package monitor

import (
	"errors"
	"time"
)

var errNoStore = errors.New("no storage configured")

type Status struct {
	Driver    string    `json:"driver"`
	Storage   bool      `json:"storage"`
	Error     string    `json:"error,omitempty"`
	LastCheck time.Time `json:"last_check"`
}
