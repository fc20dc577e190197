package controls

import "github.com/go-drift/vista/pkg/visual"

// TextBlock is a text leaf. Display member bindings materialize into one.
type TextBlock struct {
	visual.Base

	text string
}

func NewTextBlock() *TextBlock {
	t := &TextBlock{}
	t.Init(t)
	return t
}

func (t *TextBlock) Text() string {
	return t.text
}

func (t *TextBlock) SetText(text string) {
	t.text = text
}
