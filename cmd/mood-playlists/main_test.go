package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/justestif/go-mood-playlists/internal/detect"
)

// runCmd executes the root command with only local capabilities enabled.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{
		"ADDR", "PORT", "SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET",
		"FACIAL_API_URL", "OLLAMA_HOST", "DATABASE_URL",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDetectCmd_Text(t *testing.T) {
	out, err := runCmd(t, "detect", "--text", "I am so happy and excited today, this is great!")
	if err != nil {
		t.Fatalf("detect error = %v (output %s)", err, out)
	}

	var got detect.Result
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding output %q: %v", out, err)
	}
	if got.Mood != "happy" || got.Method != detect.MethodText {
		t.Errorf("result = %+v, want happy via text", got)
	}
	if len(got.Playlists) != 3 {
		t.Errorf("playlists = %d, want 3", len(got.Playlists))
	}
}

func TestDetectCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"detect"}, "clearer input"},
		{"missing image file", []string{"detect", "--image-file", "does-not-exist.jpg"}, "reading image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestMoodsCmd(t *testing.T) {
	out, err := runCmd(t, "moods")
	if err != nil {
		t.Fatalf("moods error = %v", err)
	}
	for _, want := range []string{
		"MOOD",
		"romantic, love songs, date night",
		"workout, energetic, power",
		"happy, joy, positive",
		"Unrecognized emotions map to chill.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
