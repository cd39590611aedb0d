// Package completion implements the completion trigger state machine and
// the candidate-application protocol.
//
// The engine derives a "meet" (token anchor plus typed prefix) from the
// cursor on every relevant editor event, decides whether the meet calls
// for a fresh provider request, an in-place narrowing of already-fetched
// candidates, or a session stop, and applies an accepted candidate back
// into the buffer through the text-input primitive. All session state
// transitions run on a single event-processing goroutine; asynchronous
// provider results re-enter through the engine's arrival queue tagged
// with the meet they were requested for, and stale arrivals are dropped.
package completion
