package debug

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/mem"
)

var workDir = sync.OnceValues(os.Getwd)

// stripPath makes file relative to the working directory captured on first
// use, so every stack in a process strips against the same root.
func stripPath(file string) string {
	root, err := workDir()
	if err != nil {
		return file
	}

	if rel, err := filepath.Rel(root, file); err == nil {
		return filepath.ToSlash(rel)
	}
	return file
}

func frames(skip int, options stackOptions) (stack []StackFrame) {
	depth := options.maxDepth
	if depth <= 0 {
		depth = maxDepth
	}

	pc := make([]uintptr, depth)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callers := runtime.CallersFrames(pc[:n])

	for {
		frame, more := callers.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			file := frame.File
			if options.strip {
				file = stripPath(frame.File)
			}

			stack = append(stack, StackFrame{
				Function: frame.Function,
				File:     file,
				Line:     frame.Line,
			})
		}
		if !more {
			return stack
		}
	}
}

func memStats() (stats MemStats) {
	var runtimeStats runtime.MemStats
	runtime.ReadMemStats(&runtimeStats)

	stats.Alloc = runtimeStats.Alloc
	stats.TotalAlloc = runtimeStats.TotalAlloc
	stats.Mallocs = runtimeStats.Mallocs
	stats.HeapAlloc = runtimeStats.HeapAlloc
	stats.HeapObjects = runtimeStats.HeapObjects

	// Total is host memory; it stays zero where gopsutil cannot read it.
	if virtual, err := mem.VirtualMemory(); err == nil && virtual != nil {
		stats.Total = virtual.Total
	}

	return
}

func makeStack(msg string, skip int, options stackOptions) Stack {
	return Stack{
		Message:  msg,
		Time:     time.Now().UnixMilli(),
		Frames:   frames(skip, options),
		MemStats: memStats(),
		Total:    options.calls,
	}
}
