package ui

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps progressbar/v3 with toolprobe styling
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a counting progress bar on w. A nil writer
// discards the bar.
func NewProgressBar(w io.Writer, max int, description string) *ProgressBar {
	if w == nil {
		w = io.Discard
	}
	bar := progressbar.NewOptions(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Add increments the progress bar by n
func (p *ProgressBar) Add(n int) error {
	return p.bar.Add(n)
}

// Describe changes the description of the progress bar
func (p *ProgressBar) Describe(description string) {
	p.bar.Describe(description)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() error {
	return p.bar.Finish()
}

// Clear clears the progress bar
func (p *ProgressBar) Clear() error {
	return p.bar.Clear()
}

