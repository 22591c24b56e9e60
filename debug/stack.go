package debug

type MemStats struct {
	Total       uint64
	Alloc       uint64
	TotalAlloc  uint64
	Mallocs     uint64
	HeapAlloc   uint64
	HeapObjects uint64
}

// Stack is the context captured alongside a logged message.
type Stack struct {
	Message  string
	Time     int64
	Frames   []StackFrame
	MemStats MemStats
	Total    int
}

type StackFrame struct {
	Function string
	File     string
	Line     int
}

type stackOptions struct {
	strip    bool
	maxDepth int
	calls    int
}

// Caller returns the innermost frame, the code that logged the message.
func (s *Stack) Caller() (StackFrame, bool) {
	if s == nil || len(s.Frames) == 0 {
		return StackFrame{}, false
	}
	return s.Frames[0], true
}
