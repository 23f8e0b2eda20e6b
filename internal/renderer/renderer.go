package renderer

import (
	"fmt"

	"github.com/kjkrol/glprim/pkg/gfx"
)

// objectSet attaches, resizes and detaches objects as a group. It keeps
// track of what was attached so a failed Attach leaves nothing behind.
type objectSet struct {
	objects  []gfx.Object
	attached int
}

func (s *objectSet) attachAll() error {
	for i, obj := range s.objects {
		if err := obj.Attach(); err != nil {
			s.detachAll()
			return fmt.Errorf("attach object %d (%T): %w", i, obj, err)
		}
		s.attached = i + 1
	}
	return nil
}

func (s *objectSet) resizeAll(e gfx.Resize) {
	size, drawSize := e.Size(), e.DrawSize()
	for _, obj := range s.objects[:s.attached] {
		obj.Resize(size, drawSize)
	}
}

func (s *objectSet) renderAll() {
	for _, obj := range s.objects[:s.attached] {
		obj.Render()
	}
}

func (s *objectSet) detachAll() {
	for i := s.attached - 1; i >= 0; i-- {
		s.objects[i].Detach()
	}
	s.attached = 0
}
