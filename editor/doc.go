// Package editor provides a frame-driven single-line text widget.
//
// The package is responsible for input interpretation, caret blinking, word
// deletion, clipboard paste and composing the widget's bitmap. The host owns
// the frame loop: it calls Update once per frame with the frame's key events
// and a monotonic timestamp, then draws Bitmap.
//
// A Widget is not safe for concurrent use.
package editor
