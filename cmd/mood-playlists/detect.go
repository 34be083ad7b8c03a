package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/justestif/go-mood-playlists/internal/detect"
)

func newDetectCmd(c *cli) *cobra.Command {
	var (
		text      string
		imageFile string
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the mood of some text or an image and print playlists as JSON",
		Long: `Runs one detection and prints the result as JSON.

An --image-file takes precedence over --text, exactly like the web API.

Examples:
  mood-playlists detect --text "I am so happy and excited today"
  mood-playlists detect --image-file selfie.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in detect.Input
			if cmd.Flags().Changed("text") {
				in.Text = &text
			}
			if imageFile != "" {
				dataURL, err := readDataURL(imageFile)
				if err != nil {
					return err
				}
				in.Image = &dataURL
			}

			a, err := newApp(cmd.Context(), c.cfg, c.logger, false)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.detector.Detect(cmd.Context(), in)
			if err != nil {
				return errors.New(detect.UserMessage(err))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "text describing how you feel")
	cmd.Flags().StringVar(&imageFile, "image-file", "", "path to a face image (jpeg, png or gif)")
	return cmd
}

// readDataURL loads a file as a base64 data URL, the form the web UI sends.
func readDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
