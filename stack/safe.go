package stack

import "sync"

// SafeStack serializes access to a single arena with a mutex, for callers
// that share one stack across goroutines. All methods mirror the Stack
// methods of the same name.
type SafeStack struct {
	mu sync.Mutex
	s  *Stack
}

// NewSafe allocates an arena and wraps it for concurrent use.
func NewSafe(capacity int) (*SafeStack, error) {
	s, err := New(capacity)
	if err != nil {
		return nil, err
	}
	return &SafeStack{s: s}, nil
}

// NewSafeWithConfig allocates an arena with explicit limits and wraps it
// for concurrent use.
func NewSafeWithConfig(cfg Config) (*SafeStack, error) {
	s, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &SafeStack{s: s}, nil
}

// Wrap places an existing arena behind a mutex. The caller must stop using
// the bare handle afterward; the wrapper cannot guard direct access.
func Wrap(s *Stack) *SafeStack {
	return &SafeStack{s: s}
}

// Do runs fn with the lock held, for compound operations such as iterating
// entries or pairing a peek with a conditional pop. fn must not retain the
// handle after returning.
func (ss *SafeStack) Do(fn func(s *Stack) error) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return fn(ss.s)
}

func (ss *SafeStack) Push(payload []byte) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Push(payload)
}

func (ss *SafeStack) Pop(out []byte) (int, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Pop(out)
}

func (ss *SafeStack) Peek(out []byte) (int, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Peek(out)
}

func (ss *SafeStack) PopBytes() ([]byte, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.PopBytes()
}

func (ss *SafeStack) PeekBytes() ([]byte, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.PeekBytes()
}

func (ss *SafeStack) EntryCount() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.EntryCount()
}

func (ss *SafeStack) IsEmpty() bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.IsEmpty()
}

func (ss *SafeStack) FreeSize() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.FreeSize()
}

func (ss *SafeStack) UsedSize() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.UsedSize()
}

func (ss *SafeStack) Capacity() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Capacity()
}

func (ss *SafeStack) IsValid() bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.IsValid()
}

func (ss *SafeStack) Acquire() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Acquire()
}

func (ss *SafeStack) Release() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Release()
}

func (ss *SafeStack) Refcount() uint32 {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Refcount()
}

func (ss *SafeStack) Stats() Stats {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Stats()
}

// EncodeSnapshot serializes the arena under the lock, capturing a
// consistent image even while other goroutines mutate it.
func (ss *SafeStack) EncodeSnapshot() ([]byte, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.EncodeSnapshot()
}
