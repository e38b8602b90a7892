package ui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const overlayPage = "overlay"

// Stack holds the screens in display order, the root List at the bottom.
// Only the top screen is shown and receives input.
type Stack struct {
	ctx     *Context
	pages   *tview.Pages
	screens []Screen

	overlay     tview.Primitive
	overlayName string
}

// NewStack creates an empty stack and installs it into ctx
func NewStack(ctx *Context) *Stack {
	s := &Stack{ctx: ctx, pages: tview.NewPages()}
	ctx.Stack = s
	return s
}

// Primitive returns the widget hosting the screens
func (s *Stack) Primitive() *tview.Pages {
	return s.pages
}

// Len returns the number of screens on the stack
func (s *Stack) Len() int {
	return len(s.screens)
}

// Top returns the screen currently shown, or nil
func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Push shows screen on top of the stack. A Detail pushed over a Detail
// replaces it.
func (s *Stack) Push(screen Screen) {
	if top := s.Top(); top != nil && top.Kind() == KindDetail && screen.Kind() == KindDetail {
		s.removeTop()
	}

	s.screens = append(s.screens, screen)
	name := pageName(len(s.screens) - 1)
	s.pages.AddPage(name, screen.Primitive(), true, true)
	s.pages.SwitchToPage(name)
	log.Printf("push %s screen (depth %d)", screen.Kind(), len(s.screens))

	screen.Render()
	screen.Focus()
}

// Pop removes the top screen and refocuses the one below. Popping the root
// List quits the application.
func (s *Stack) Pop() {
	if len(s.screens) <= 1 {
		s.ctx.Quit()
		return
	}

	s.removeTop()
	log.Printf("pop to %s screen (depth %d)", s.Top().Kind(), len(s.screens))
	s.pages.SwitchToPage(pageName(len(s.screens) - 1))
	s.Top().Focus()
}

func (s *Stack) removeTop() {
	s.pages.RemovePage(pageName(len(s.screens) - 1))
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
}

// ShowOverlay draws p above the top screen and gives it focus until
// CloseOverlay
func (s *Stack) ShowOverlay(name string, p tview.Primitive) {
	s.CloseOverlay()
	s.overlay = p
	s.overlayName = name
	s.pages.AddPage(overlayPage, p, true, true)
	s.ctx.SetFocus(p)
}

// CloseOverlay removes the overlay, if any, and refocuses the top screen
func (s *Stack) CloseOverlay() {
	if s.overlay == nil {
		return
	}
	s.pages.RemovePage(overlayPage)
	s.overlay = nil
	s.overlayName = ""
	if top := s.Top(); top != nil {
		top.Focus()
	}
}

// Overlay returns the name of the open overlay, empty when none is shown
func (s *Stack) Overlay() string {
	return s.overlayName
}

// HandleKey routes ev to the overlay when one is open, otherwise to the top
// screen. It is installed as the application's input capture.
func (s *Stack) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	if s.Overlay() != "" {
		if ev.Key() == tcell.KeyEscape || isRune(ev, 'q') || isRune(ev, '?') {
			s.CloseOverlay()
			return nil
		}
		// Remaining keys scroll the overlay and never reach the screen below.
		return ev
	}

	top := s.Top()
	if top == nil {
		return ev
	}
	return top.HandleKey(ev)
}

func pageName(index int) string {
	return fmt.Sprintf("screen-%d", index)
}

// isRune reports whether ev is the printable key r
func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}
