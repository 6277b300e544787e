// Package artistpanel renders the artist header: name, fans, albums and
// picture link.
package artistpanel

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/ui/styles"
)

// Render draws the artist panel at the given width.
func Render(a *catalog.Artist, msgs errmsg.Catalog, fromCache bool, width int) string {
	if a == nil {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(styles.Banner(a.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", s.Muted.Render(msgs.Get(errmsg.MsgFans)+":"), s.Base.Render(a.FansLabel()))
	fmt.Fprintf(&b, "%s %s", s.Muted.Render(msgs.Get(errmsg.MsgAlbums)+":"), s.Base.Render(humanize.Comma(a.Albums)))
	if a.PictureURL != "" {
		b.WriteString("\n")
		b.WriteString(s.Subtle.Render(a.PictureURL))
	}
	if fromCache {
		b.WriteString("\n")
		b.WriteString(s.Subtle.Render("(cache)"))
	}

	return s.Panel.Width(max(width-2, 0)).Render(b.String())
}
