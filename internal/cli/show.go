package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/loader"
)

func newShowCmd(o *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the artist and its top tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *o)
			if err != nil {
				return err
			}
			rt, err := setup(cmd.Context(), cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer rt.Close()

			view := rt.loader.Load(cmd.Context())
			if err := writeView(cmd.OutOrStdout(), view, rt.msgs); err != nil {
				return err
			}
			if view.State == loader.StateFailed {
				return fmt.Errorf("%s", view.Error)
			}
			return nil
		},
	}
}

// writeView prints view as plain text.
func writeView(w io.Writer, view loader.View, msgs errmsg.Catalog) error {
	var b strings.Builder
	switch {
	case view.Error != "":
		b.WriteString(view.Error + "\n")
	case view.NotFound || view.Artist == nil:
		b.WriteString(msgs.Get(errmsg.MsgArtistNotFound) + "\n")
	default:
		a := view.Artist
		fmt.Fprintf(&b, "%s\n", a.Name)
		fmt.Fprintf(&b, "%s: %s\n", msgs.Get(errmsg.MsgFans), a.FansLabel())
		fmt.Fprintf(&b, "%s: %s\n", msgs.Get(errmsg.MsgAlbums), humanize.Comma(a.Albums))
		if a.PictureURL != "" {
			fmt.Fprintf(&b, "%s\n", a.PictureURL)
		}
		fmt.Fprintf(&b, "\n%s\n", msgs.Get(errmsg.MsgTopTracks))
		for _, t := range view.TopTracks {
			fmt.Fprintf(&b, "%2d. %s (%s)\n", t.Rank+1, t.Title, t.FormatDuration())
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
