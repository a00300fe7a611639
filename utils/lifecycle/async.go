package lifecycle

import (
	"errors"
	"runtime/debug"
	"sync"

	"github.com/ugparu/recdl/utils/logger"
)

type asyncLifecycleManager[T AsyncInstance] struct {
	instance             T
	failsafe             bool
	stopChan, doneChan   chan struct{}
	startOnce, closeOnce *sync.Once
}

// NewAsyncManager returns a manager whose loop ends on the first Step error or panic.
// A failing start function is reported to the caller and closes Done.
func NewAsyncManager[T AsyncInstance](instance T) AsyncManager[T] {
	return newAsyncManager(instance, false)
}

// NewFailSafeAsyncManager returns a manager whose loop survives Step errors and panics;
// only BreakError or Close end it. Start never reports an error.
func NewFailSafeAsyncManager[T AsyncInstance](instance T) AsyncManager[T] {
	return newAsyncManager(instance, true)
}

func newAsyncManager[T AsyncInstance](instance T, failsafe bool) *asyncLifecycleManager[T] {
	return &asyncLifecycleManager[T]{
		instance:  instance,
		failsafe:  failsafe,
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
		startOnce: &sync.Once{},
		closeOnce: &sync.Once{},
	}
}

func (ssc *asyncLifecycleManager[T]) Start(startFunc func(T) error) (err error) {
	if ssc.failsafe {
		return ssc.startFailsafe(startFunc)
	}
	select {
	case <-ssc.stopChan:
		return &StartedAfterCloseError{}
	default:
		err = &StartedAlreadyError{}
	}
	ssc.startOnce.Do(func() {
		logger.Debug(ssc.instance, "Starting async")
		if err = startFunc(ssc.instance); err != nil {
			close(ssc.doneChan)
			return
		}
		go ssc.process()
	})
	return err
}

func (ssc *asyncLifecycleManager[T]) startFailsafe(startFunc func(T) error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ssc.instance, "Panic on start: %v", r)
			logger.Errorf(ssc.instance, "%s", debug.Stack())
		}
	}()
	ssc.startOnce.Do(func() {
		logger.Debug(ssc.instance, "Starting failsafe async")
		if err := startFunc(ssc.instance); err != nil {
			logger.Warningf(ssc.instance, "Detected error on start: %s", err.Error())
		}
		go ssc.process()
	})
	return nil
}

func (ssc *asyncLifecycleManager[T]) process() {
	logger.Debug(ssc.instance, "Entering main loop")

	defer close(ssc.doneChan)
	running := true
	for running {
		running = ssc.step()
	}
}

func (ssc *asyncLifecycleManager[T]) step() (running bool) {
	running = true
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ssc.instance, "Panic detected! Recovering from: %v", r)
			logger.Errorf(ssc.instance, "%s", debug.Stack())
			running = ssc.failsafe
		}
	}()
	err := ssc.instance.Step(ssc.stopChan)
	if err == nil {
		return true
	}
	var brk *BreakError
	if errors.As(err, &brk) {
		return false
	}
	logger.Warningf(ssc.instance, "Detected error: %s", err.Error())
	return ssc.failsafe
}

// Close stops the loop, waits for it to exit and releases the instance. Only the first
// call has any effect.
func (ssc *asyncLifecycleManager[T]) Close() {
	ssc.closeOnce.Do(func() {
		close(ssc.stopChan)
		ssc.startOnce.Do(func() {
			close(ssc.doneChan)
		})
		<-ssc.doneChan
		ssc.instance.Release()
	})
}

func (ssc *asyncLifecycleManager[T]) Done() <-chan struct{} {
	return ssc.doneChan
}
