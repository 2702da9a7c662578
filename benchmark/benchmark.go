// benchmark.go
// Wraps a tool run and reports its runtime and memory usage.

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Run wraps any function to measure its runtime and memory usage, printing
// the report to stdout.
func Run(label string, f func()) {
	RunTo(os.Stdout, label, f)
}

// RunTo is Run with the report written to w.
func RunTo(w io.Writer, label string, f func()) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	startGoroutines := runtime.NumGoroutine()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", mb(memEnd.TotalAlloc-memStart.TotalAlloc))
	fmt.Fprintf(w, "[Benchmark] Heap In Use: %.2f MB\n", mb(memEnd.HeapAlloc))
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines: %d -> %d\n", startGoroutines, runtime.NumGoroutine())
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

func mb(n uint64) float64 {
	return float64(n) / 1024.0 / 1024.0
}
