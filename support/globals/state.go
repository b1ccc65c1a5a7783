package globals

import "sync"

// whole-system state, single-session and non-restartable

const (
	Idle = iota
	AwaitingConnection
	Running
	Draining
	Stopped
)

var stateNames = map[int]string{
	Idle:               "idle",
	AwaitingConnection: "awaiting connection",
	Running:            "running",
	Draining:           "draining",
	Stopped:            "stopped",
}

var systemState = struct {
	sync.RWMutex
	value int
}{value: Idle}

// ShutdownTrigger carries the cause of an internally requested shutdown
// to the supervisor in main. Buffered so that a failing service never
// blocks on an already draining system.
var ShutdownTrigger = make(chan string, 4)

func SetState(s int) {
	systemState.Lock()
	// no transition back once draining has started
	if systemState.value < Draining || s > systemState.value {
		systemState.value = s
	}
	systemState.Unlock()
}

func State() int {
	systemState.RLock()
	defer systemState.RUnlock()
	return systemState.value
}

func StateName() string {
	return stateNames[State()]
}

// RequestShutdown registers a shutdown cause without ever blocking.
// Only the first cause is retained, later ones are dropped.
func RequestShutdown(cause string) {
	select {
	case ShutdownTrigger <- cause:
	default:
	}
}
