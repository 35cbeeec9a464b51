package reporting

import "sync"

// LastError keeps at most one outstanding user visible error message.
// Reports overwrite each other, last write wins, and only the consumer
// clears the slot.
type LastError struct {
	mu  sync.RWMutex
	msg string
}

func New() *LastError {
	return &LastError{}
}

func (r *LastError) Report(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.msg = msg
}

func (r *LastError) Last() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.msg
}

func (r *LastError) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.msg = ""
}
