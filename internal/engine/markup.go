package engine

// Button is a single tappable cell of an inline keyboard.
type Button struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// Markup is the button grid attached to a chat message.
type Markup struct {
	InlineKeyboard [][]Button `json:"inline_keyboard"`
}

// Rows returns the number of rows in the grid.
func (m Markup) Rows() int {
	return len(m.InlineKeyboard)
}

// Buttons flattens the grid in reading order.
func (m Markup) Buttons() []Button {
	var out []Button
	for _, row := range m.InlineKeyboard {
		out = append(out, row...)
	}
	return out
}

// Builder accumulates rows of buttons.
type Builder struct {
	rows [][]Button
}

// Row appends one row. Empty rows are dropped.
func (b *Builder) Row(buttons ...Button) *Builder {
	if len(buttons) == 0 {
		return b
	}
	row := make([]Button, len(buttons))
	copy(row, buttons)
	b.rows = append(b.rows, row)
	return b
}

// Markup returns the accumulated grid.
func (b *Builder) Markup() Markup {
	return Markup{InlineKeyboard: b.rows}
}

func button(text string, data CallbackData) Button {
	return Button{Text: text, CallbackData: data.Pack()}
}

func blankButton(text string) Button {
	return Button{Text: text, CallbackData: IgnoreCallback}
}
