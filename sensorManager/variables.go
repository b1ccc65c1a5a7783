package sensorManager

import "sync"

// ActiveClient tracks the single connected instrument controller,
// used for diagnostics via the API only.
var ActiveClient = struct {
	sync.RWMutex
	Address   string
	Since     int64
	Received  int64
	Discarded int64
}{}
