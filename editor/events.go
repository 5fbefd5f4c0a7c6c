package editor

// ChangeEvent describes the widget after an effective edit or caret move.
type ChangeEvent struct {
	Version  uint64
	Position int

	Text string
}

func (w *Widget) buildChangeEvent() ChangeEvent {
	return ChangeEvent{
		Version:  w.text.Version(),
		Position: w.text.Position(),
		Text:     w.text.Content(),
	}
}
