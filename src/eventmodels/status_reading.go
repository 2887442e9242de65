package eventmodels

import "time"

// StatusReading is the result of one refresh. A reading is created per
// fetch, applied to its view sink, and discarded; readings are never cached
// or diffed against a previous reading.
type StatusReading struct {
	Success   bool
	Status    string
	Balance   float64
	Running   bool
	Message   string
	Timestamp time.Time
}
