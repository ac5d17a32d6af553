// Package profile provides optional runtime profiling for stencil.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//	stencil --pprof-mode=cpu render page.tmpl
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a
// no-op stopper.
//
// Supported modes: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread and trace. Profiles are written under the directory given with
// [WithPath] and can be inspected with:
//
//	go tool pprof -http=: cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
