package figma

import "sync"

// frameLocks serializes deck edits per frame inside this process. Every edit
// reads the whole config and writes it back, so two concurrent edits of the
// same frame would otherwise drop one of them.
type frameLocks struct {
	mu    sync.Mutex
	locks map[string]*frameLock
}

type frameLock struct {
	sync.Mutex
	refs int
}

func newFrameLocks() *frameLocks {
	return &frameLocks{locks: make(map[string]*frameLock)}
}

// lock blocks until frameID is free and returns its unlock func.
func (l *frameLocks) lock(frameID string) func() {
	l.mu.Lock()
	fl, ok := l.locks[frameID]
	if !ok {
		fl = &frameLock{}
		l.locks[frameID] = fl
	}
	fl.refs++
	l.mu.Unlock()

	fl.Lock()
	return func() {
		fl.Unlock()

		l.mu.Lock()
		fl.refs--
		if fl.refs == 0 {
			delete(l.locks, frameID)
		}
		l.mu.Unlock()
	}
}

func (l *frameLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
