package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themekit/internal/adapters"
	"github.com/thatcatcamp/themekit/internal/dom"
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
	"github.com/thatcatcamp/themekit/internal/tokens"
)

var previewSteps = []string{themes.StepLighter, themes.StepLight, themes.StepDefault, themes.StepDark, themes.StepDarker}

var previewPalettes = []string{"primary", "info", "success", "warning", "error"}

// previewContent is the sample page body. Every colour is a variable
// reference, so switching mode or preset restyles it without new markup.
func previewContent(cur settings.Settings) string {
	var b strings.Builder
	b.WriteString(`<main class="card">` + "\n")
	fmt.Fprintf(&b, "<h1>Theme preview</h1>\n<p class=\"muted\">mode <strong>%s</strong>, preset <strong>%s</strong>, %dpx %s</p>\n",
		html.EscapeString(string(cur.ThemeMode)),
		html.EscapeString(string(cur.ThemeColorPresets)),
		cur.FontSize,
		html.EscapeString(cur.FontFamily))
	b.WriteString("<p><button>Primary action</button> <a href=\"/theme.css\">Stylesheet</a> <a href=\"/tailwind.config.json\">Utility config</a></p>\n")

	b.WriteString("<table>\n")
	for _, name := range previewPalettes {
		fmt.Fprintf(&b, "<tr><th>%s</th>", name)
		for _, step := range previewSteps {
			ref := tokens.ParsePath("colors.palette." + name + "." + step).VarRef()
			fmt.Fprintf(&b, `<td style="background-color: %s; padding: 8px 16px;">%s</td>`, ref, step)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n</main>")
	return b.String()
}

// Preview renders a page whose root carries the live mode and preset
// attributes, wrapped in the component kit provider. The page, the root
// attributes and the kit theme all come from one settings snapshot.
func (s *Server) Preview(c *gin.Context) {
	snap := s.store.Settings()
	doc := dom.New()

	list := []adapters.Adapter{
		adapters.NewDetachedDocumentAdapter(doc, s.log),
		adapters.NewComponentKitAdapter(s.registry, s.store),
	}
	body := adapters.ComposeSnapshot(adapters.Content(previewContent(snap)), list, snap)

	head := `<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>themekit preview</title>
<link rel="stylesheet" href="/theme.css">`

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.Render(head, body.Render())))
}
