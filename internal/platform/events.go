package platform

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type EnterNotify struct{}
type LeaveNotify struct{}
type DestroyNotify struct{}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}

// Resize carries both the logical window size and the drawable size, which
// differ on high-DPI displays.
type Resize struct {
	Width, Height     int
	FbWidth, FbHeight int
}
type UnexpectedEvent struct{}
type TimeoutEvent struct{}

// eventQueue buffers events produced by callback-driven backends.
type eventQueue chan Event

func newEventQueue() eventQueue {
	return make(eventQueue, 64)
}

func (q eventQueue) push(e Event) {
	select {
	case q <- e:
	default:
		// drop when full, the loop is not draining
	}
}

func (q eventQueue) pop() (Event, bool) {
	select {
	case e := <-q:
		return e, true
	default:
		return nil, false
	}
}
