package pinchzoom

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Page is one image of the viewer. Pages are immutable.
type Page struct {
	ID        int    `yaml:"id"`
	ImageName string `yaml:"image"`
}

// PageList is the ordered, read-only page provider. Order is display and
// thumbnail order.
type PageList struct {
	pages []Page
	index map[int]int
}

// NewPageList copies pages into a PageList. Page ids must be unique.
func NewPageList(pages []Page) (*PageList, error) {
	l := &PageList{
		pages: make([]Page, len(pages)),
		index: make(map[int]int, len(pages)),
	}
	copy(l.pages, pages)
	for i, p := range l.pages {
		if _, dup := l.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate page id %d", p.ID)
		}
		if p.ImageName == "" {
			return nil, fmt.Errorf("page %d: missing image name", p.ID)
		}
		l.index[p.ID] = i
	}
	return l, nil
}

// pageFile is the YAML layout read by LoadPages.
type pageFile struct {
	Pages []Page `yaml:"pages"`
}

// LoadPages parses a YAML page list:
//
//	pages:
//	  - id: 1
//	    image: magazine-front-cover
//	  - id: 2
//	    image: magazine-back-cover
func LoadPages(data []byte) (*PageList, error) {
	var f pageFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}
	if len(f.Pages) == 0 {
		return nil, fmt.Errorf("parse pages: %w", ErrNoPages)
	}
	l, err := NewPageList(f.Pages)
	if err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}
	return l, nil
}

// Len returns the number of pages.
func (l *PageList) Len() int { return len(l.pages) }

// At returns the page at display position i.
func (l *PageList) At(i int) Page { return l.pages[i] }

// Pages returns a copy of the pages in display order.
func (l *PageList) Pages() []Page {
	out := make([]Page, len(l.pages))
	copy(out, l.pages)
	return out
}

// Lookup returns the page with the given id.
func (l *PageList) Lookup(id int) (Page, bool) {
	i, ok := l.index[id]
	if !ok {
		return Page{}, false
	}
	return l.pages[i], true
}

// IndexOf returns the display position of the page with the given id, or -1.
func (l *PageList) IndexOf(id int) int {
	if i, ok := l.index[id]; ok {
		return i
	}
	return -1
}

// ImageLookup resolves an image name to a drawable image.
type ImageLookup interface {
	Image(name string) (*ebiten.Image, error)
}

// ErrImageNotFound is returned by ImageMap for unknown names.
var ErrImageNotFound = errors.New("pinchzoom: image not found")

// ImageMap is an in-memory ImageLookup.
type ImageMap map[string]*ebiten.Image

// Image implements ImageLookup.
func (m ImageMap) Image(name string) (*ebiten.Image, error) {
	img, ok := m[name]
	if !ok || img == nil {
		return nil, fmt.Errorf("%w: %q", ErrImageNotFound, name)
	}
	return img, nil
}
