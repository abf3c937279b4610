package system

import (
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"golang.design/x/clipboard"
)

// ContactSystem copies the page's contact address to the clipboard when C is
// pressed.
type ContactSystem struct {
	input InputSource
	write func(text string) error
}

func NewContactSystem(input InputSource, write func(text string) error) *ContactSystem {
	if write == nil {
		write = writeClipboard
	}
	return &ContactSystem{input: inputOrDefault(input), write: write}
}

func (c *ContactSystem) Update(w *ecs.World) {
	if !c.input.KeyJustPressed(ebiten.KeyC) {
		return
	}
	page, ok := ecs.Single(w, component.PageComponent.Kind())
	if !ok || page.Contact == "" {
		return
	}
	if err := c.write(page.Contact); err != nil {
		log.Printf("contact: copy: %v", err)
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventContactCopied, Data: page.Contact})
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func writeClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
