package debug

import (
	"fmt"
	"sync"
)

const (
	maxDepth = 32
)

type Level int

const (
	Verbose Level = iota + 1
	Warning
)

func (l Level) String() string {
	switch l {
	case Verbose:
		return "verbose"
	case Warning:
		return "warning"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

type Callback func(message string, stack Stack, level Level)

// Logger fans each message out to its callbacks. Callbacks run on their own
// goroutine and must not block the caller.
type Logger struct {
	mu       sync.Mutex
	callback []Callback
	maxDepth int
	strip    bool
	Calls    int
}

func (l *Logger) SetStrip(strip bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.strip = strip
	return l
}

func (l *Logger) SetMaxDepth(depth int) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maxDepth = depth
	return l
}

func (l *Logger) AddCallback(callback Callback) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callback = append(l.callback, callback)
	return l
}

func (l *Logger) Verbose(msg string, formats ...any) {
	l.log(Verbose, msg, formats...)
}

func (l *Logger) Warning(msg string, formats ...any) {
	l.log(Warning, msg, formats...)
}

func (l *Logger) Log(level Level, msg string, formats ...any) {
	l.log(level, msg, formats...)
}

// log must be called directly from an exported method so the captured stack
// starts at the caller of that method.
func (l *Logger) log(level Level, msg string, formats ...any) {
	if l == nil {
		return
	}

	msg = fmt.Sprintf(msg, formats...)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.Calls++

	if len(l.callback) == 0 {
		return
	}

	stack := makeStack(msg, 5, stackOptions{
		strip:    l.strip,
		maxDepth: l.maxDepth,
		calls:    l.Calls,
	})

	for _, callback := range l.callback {
		go callback(msg, stack, level)
	}
}

func NewLogger() *Logger {
	return &Logger{
		maxDepth: maxDepth,
	}
}
