// Package cwd provides the process-backed current-directory capability
// consumed by winpath.FullPath and winpath.LongPath. The core library never
// reads process state itself; callers pass cwd.Current (or any substitute)
// explicitly.
package cwd
