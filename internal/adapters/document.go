package adapters

import (
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themekit/internal/dom"
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// DocumentAdapter keeps the document root in step with the settings: the mode
// and preset data attributes select the stylesheet rules, the root font size
// sets the rem base and the body font family is inherited by the page. It is
// the only writer of those attributes.
type DocumentAdapter struct {
	doc      *dom.Document
	log      zerolog.Logger
	detached bool

	mu      sync.Mutex
	last    settings.Settings
	applied bool
	cancel  func()
}

// NewDocumentAdapter applies the current settings to doc and keeps applying
// them on every change until Close.
func NewDocumentAdapter(doc *dom.Document, src settings.Source, log zerolog.Logger) *DocumentAdapter {
	a := &DocumentAdapter{
		doc: doc,
		log: log.With().Str("component", "document").Logger(),
	}
	a.cancel = src.Subscribe(a.Apply)

	// A notification that arrived after Subscribe is newer than anything
	// read here, so the initial snapshot only applies if none has.
	a.mu.Lock()
	if !a.applied {
		a.apply(src.Settings())
	}
	a.mu.Unlock()
	return a
}

// NewDetachedDocumentAdapter returns an adapter that follows no source. It
// applies the snapshot of the composition it is wrapped in, which suits a
// document rendered once per request.
func NewDetachedDocumentAdapter(doc *dom.Document, log zerolog.Logger) *DocumentAdapter {
	return &DocumentAdapter{
		doc:      doc,
		log:      log.With().Str("component", "document").Logger(),
		detached: true,
	}
}

// Apply writes the parts of s that differ from the last applied snapshot.
// Each axis is written independently, so a mode change never touches the
// preset attribute and vice versa. All writes for one snapshot land in a
// single document update.
func (a *DocumentAdapter) Apply(s settings.Settings) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.apply(s)
}

func (a *DocumentAdapter) apply(s settings.Settings) {
	first := !a.applied
	last := a.last

	a.doc.Update(func(root, body dom.Writer) {
		if first || s.ThemeMode != last.ThemeMode {
			root.SetAttribute(themes.AttrThemeMode, string(s.ThemeMode))
		}
		if first || s.ThemeColorPresets != last.ThemeColorPresets {
			root.SetAttribute(themes.AttrColorPalette, string(s.ThemeColorPresets))
		}
		if first || s.FontFamily != last.FontFamily || s.FontSize != last.FontSize {
			root.SetStyle("font-size", strconv.Itoa(s.FontSize)+"px")
			body.SetStyle("font-family", s.FontFamily)
		}
	})

	a.last = s
	a.applied = true
	a.log.Debug().
		Str("mode", string(s.ThemeMode)).
		Str("preset", string(s.ThemeColorPresets)).
		Msg("document synchronized")
}

// Wrap passes content through; the adapter works on the document itself.
// A detached adapter applies the composition's snapshot first.
func (a *DocumentAdapter) Wrap(p Props) *Node {
	if a.detached {
		a.Apply(p.Settings)
	}
	return p.Children
}

// Close stops following the settings.
func (a *DocumentAdapter) Close() {
	if a.cancel != nil {
		a.cancel()
	}
}
