package lifecycle

// Instance is an object whose start and release are guarded by a Manager.
type Instance interface {
	Release()
	String() string
}

// AsyncInstance runs Step in a loop until it returns an error. Returning BreakError ends
// the loop quietly.
type AsyncInstance interface {
	Instance
	Step(stopChan <-chan struct{}) error
}

type Manager[T Instance] interface {
	Start(func(T) error) error
	Close()
}

type AsyncManager[T AsyncInstance] interface {
	Manager[T]
	Done() <-chan struct{}
}

type BreakError struct{}

func (*BreakError) Error() string {
	return "break"
}

type StartedAlreadyError struct{}

func (*StartedAlreadyError) Error() string {
	return "started already"
}

type StartedAfterCloseError struct{}

func (*StartedAfterCloseError) Error() string {
	return "start after close"
}
