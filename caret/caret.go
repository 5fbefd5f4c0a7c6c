package caret

import (
	"github.com/iw2rmb/caretline/internal/grapheme"
	"github.com/iw2rmb/caretline/segment"
)

type Options struct {
	// Segmenter drives whole-word deletion. Nil uses segment.Default().
	Segmenter *segment.Segmenter

	// OnEdit is called after every effective change to the text or the caret.
	OnEdit func()
}

// State is the text and caret of one line.
type State struct {
	left, right string
	version     uint64

	seg    segment.Segmenter
	onEdit func()
}

// New returns a state holding text with the caret at its end.
func New(text string, opt Options) *State {
	seg := segment.Default()
	if opt.Segmenter != nil {
		seg = *opt.Segmenter
	}
	return &State{
		left:   text,
		seg:    seg,
		onEdit: opt.OnEdit,
	}
}

func (s *State) Content() string { return s.left + s.right }

func (s *State) Left() string { return s.left }

func (s *State) Right() string { return s.right }

// Position returns the caret position in grapheme clusters.
func (s *State) Position() int { return grapheme.Count(s.left) }

// Len returns the length of the content in grapheme clusters.
func (s *State) Len() int { return s.Position() + grapheme.Count(s.right) }

// Version increases on every effective change.
func (s *State) Version() uint64 { return s.version }

// SetContent replaces the text and puts the caret at its end.
func (s *State) SetContent(text string) {
	if s.left == text && s.right == "" {
		return
	}
	s.left, s.right = text, ""
	s.changed()
}

// MoveLeft moves the caret one cluster to the left. No-op at position 0.
func (s *State) MoveLeft() {
	g := grapheme.Last(s.left)
	if g == "" {
		return
	}
	s.left = s.left[:len(s.left)-len(g)]
	s.right = g + s.right
	s.changed()
}

// MoveRight moves the caret one cluster to the right. No-op at the end.
func (s *State) MoveRight() {
	g := grapheme.First(s.right)
	if g == "" {
		return
	}
	s.left += g
	s.right = s.right[len(g):]
	s.changed()
}

// Insert inserts text verbatim at the caret and moves the caret past it.
func (s *State) Insert(text string) {
	if text == "" {
		return
	}
	s.left += text
	s.changed()
}

// DeleteBackward removes the cluster before the caret, or the whole last
// word token of left when wholeWord is set. No-op at position 0.
func (s *State) DeleteBackward(wholeWord bool) {
	if s.left == "" {
		return
	}
	n := len(grapheme.Last(s.left))
	if wholeWord {
		n = s.seg.LastLen(s.left)
	}
	s.left = s.left[:len(s.left)-n]
	s.changed()
}

func (s *State) changed() {
	s.version++
	if s.onEdit != nil {
		s.onEdit()
	}
}
