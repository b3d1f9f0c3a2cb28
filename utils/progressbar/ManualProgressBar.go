// Package progressbar implements functionality of printing a progress
// bar to a terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           float64
	maxProgress     float64
	currentProgress float64
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar that is width
// characters wide, reaches 100% after max units of progress, and
// prints to out
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	if max < 1 {
		max = 1
	}
	return &ManualProgressBar{
		out:             out,
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		startTime:       time.Now(),
	}
}

// Add adds n units of progress, saturating at the maximum
func (p *ManualProgressBar) Add(n int) {
	p.currentProgress += float64(n)
	if p.currentProgress > p.maxProgress {
		p.currentProgress = p.maxProgress
	}
}

// Progress returns the fraction of progress made, in [0, 1]
func (p *ManualProgressBar) Progress() float64 {
	return p.currentProgress / p.maxProgress
}

// String renders the progress bar
func (p *ManualProgressBar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	currentProg := p.currentProgress / p.maxProgress * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	p.bar.WriteString(fmt.Sprintf("| [%.2f%v | elapsed: %v]",
		p.Progress()*100, "%", time.Since(p.startTime).Truncate(time.Second)))

	return p.bar.String()
}

// Display prints the progress bar over the previously displayed one
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", p.String())
}

// Close moves to the next line after the displayed progress bar
func (p *ManualProgressBar) Close() {
	fmt.Fprintln(p.out)
}
