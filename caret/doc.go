// Package caret implements the single-line text model of the widget: the text
// split at the caret into the part before it (left) and the part after it
// (right).
//
// Positions are counted in grapheme clusters. The caret position is always the
// length of left; edits only ever touch the end of left.
package caret
