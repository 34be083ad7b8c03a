package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justestif/go-mood-playlists/internal/mood"
	"github.com/justestif/go-mood-playlists/internal/playlists"
)

func newMoodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List mood buckets, their search phrases and the emotions mapped to them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byMood := make(map[mood.Bucket][]string)
			for _, m := range mood.Mappings() {
				byMood[m.Mood] = append(byMood[m.Mood], m.Emotion)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MOOD\tSEARCH PHRASES\tEMOTIONS")
			for _, b := range mood.Buckets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b, strings.Join(playlists.SearchPhrases(b), ", "), strings.Join(byMood[b], ", "))
			}
			fmt.Fprintf(w, "\nUnrecognized emotions map to %s.\n", mood.Fallback)
			return w.Flush()
		},
	}
}
