// Package profile provides optional runtime profiling for calc.
//
// Profiling is compiled in only with the "pprof" build tag and is backed by
// [github.com/pkg/profile]. Without the tag, [Profiler.Start] always returns
// a no-op [Stopper] and [Modes] reports no modes.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/calc"}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode
// (cpu.pprof, mem.pprof, ...) and can be inspected with go tool pprof:
//
//	go tool pprof -http=: /tmp/calc/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
