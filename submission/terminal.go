package submission

import (
	"fmt"
	"io"
	"sync"
)

// DefaultLabel is the label of an idle trigger
const DefaultLabel = "Generate pacs.008 message"

// Button is the terminal trigger control. While disabled every label change
// is written to the status writer.
type Button struct {
	mu      sync.Mutex
	status  io.Writer
	label   string
	enabled bool
}

// NewButton returns an enabled Button
func NewButton(status io.Writer, label string) *Button {
	return &Button{status: status, label: label, enabled: true}
}

// Label implements Trigger
func (b *Button) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

// SetLabel implements Trigger
func (b *Button) SetLabel(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = label
	if !b.enabled && b.status != nil {
		fmt.Fprintln(b.status, label)
	}
}

// Enabled implements Trigger
func (b *Button) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// SetEnabled implements Trigger
func (b *Button) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

// ResultPanel is the terminal result area, the text is written out each time it becomes visible
type ResultPanel struct {
	mu      sync.Mutex
	out     io.Writer
	text    string
	visible bool
}

// NewResultPanel returns a hidden ResultPanel
func NewResultPanel(out io.Writer) *ResultPanel {
	return &ResultPanel{out: out}
}

// Hide implements ResultArea
func (p *ResultPanel) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

// Show implements ResultArea
func (p *ResultPanel) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.visible {
		return
	}
	p.visible = true
	if p.out != nil {
		fmt.Fprintln(p.out, p.text)
	}
}

// SetText implements ResultArea
func (p *ResultPanel) SetText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = text
}

// Visible reports whether the panel is shown
func (p *ResultPanel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Text returns the current text
func (p *ResultPanel) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}
