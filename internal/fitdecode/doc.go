// Package fitdecode exposes decoded FIT activity files as an ordered stream of
// frames.
//
// The binary framing is parsed by github.com/muktihari/fit; this package only
// adapts its messages to the small Frame capability interface the converter
// consumes (name, kind, field presence, field value). Field values arrive the
// way downstream code expects them: scale and offset applied, FIT date_time
// fields as time.Time, and invalid sentinel values reported as nil.
//
// Key types:
//   - Frame: one decoded unit (header or data message)
//   - Reader: iterator over frames, released with Close
//   - Opener: scoped-open entry point, satisfied by OpenFile
package fitdecode
