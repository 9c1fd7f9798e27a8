// Command moodpreview prints a mood's background palette and particle grid
// to the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/justestif/moodjukebox/internal/mood"
	"github.com/justestif/moodjukebox/internal/preview"
)

func main() {
	moodFlag := flag.String("mood", "", "mood to preview (romantic, happy, sad, motivational, party)")
	width := flag.Int("width", preview.DefaultWidth, "gradient swatch width in cells")
	all := flag.Bool("all", false, "preview every mood")
	flag.Parse()

	moods := []mood.Mood{mood.Parse(*moodFlag)}
	if *all {
		moods = append([]mood.Mood{mood.Default}, mood.All...)
	}

	for i, m := range moods {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, preview.Render(m, *width))
	}
}
