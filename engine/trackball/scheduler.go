package trackball

// FrameScheduler runs a callback once, before the next frame is drawn.
// A Trackball with AutoTick enabled calls RequestFrame from New and again at the start of every Tick.
type FrameScheduler interface {
	// RequestFrame queues callback to run at the start of the next frame.
	//
	// Parameters:
	//   - callback: function to invoke once
	RequestFrame(callback func())
}

// FrameSchedulerFunc adapts a plain function to the FrameScheduler interface.
type FrameSchedulerFunc func(callback func())

// RequestFrame calls f(callback).
func (f FrameSchedulerFunc) RequestFrame(callback func()) {
	f(callback)
}
