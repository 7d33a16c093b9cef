// Package beam provides a single-shot, single-value rendezvous channel for
// beaming an early result out of a newly started goroutine while that
// goroutine keeps running.
//
// Highlights:
// - New: create a (Sender, Receiver) pair sharing one value slot
// - Sender.Send: deliver the value; never blocks; spends the sender
// - Receiver.Recv: block until the value arrives or the sender hangs up
// - Close: release either side without using it
// - Spawn: start a task and block for its early value in one call
//
// Each side is single-use: the one permitted operation (or Close) spends
// the handle, and whichever side releases its stake last tears the shared
// slot down. Build with -tags beam_spin to replace the mutex/condition
// backend with a spin-lock for targets without blocking primitives.
package beam
