package command

// Prompt is the state of a command prompt: whether it is open and what has
// been typed so far.
type Prompt struct {
	active bool
	buffer string
}

// Open opens the prompt with an empty buffer. It returns false when the
// prompt is already open.
func (p *Prompt) Open() bool {
	if p.active {
		return false
	}
	p.active = true
	p.buffer = ""
	return true
}

// Cancel closes the prompt and discards the buffer.
func (p *Prompt) Cancel() {
	p.active = false
	p.buffer = ""
}

// Submit closes the prompt and returns what was typed. The prompt is already
// closed and cleared when Submit returns, so the caller may reopen it.
func (p *Prompt) Submit() (string, bool) {
	if !p.active {
		return "", false
	}
	line := p.buffer
	p.Cancel()
	return line, true
}

// SetBuffer replaces the typed text. It is ignored while the prompt is closed.
func (p *Prompt) SetBuffer(s string) {
	if p.active {
		p.buffer = s
	}
}

// Active reports whether the prompt is open.
func (p *Prompt) Active() bool {
	return p.active
}

// Buffer returns the typed text.
func (p *Prompt) Buffer() string {
	return p.buffer
}
