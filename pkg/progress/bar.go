/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package progress renders a record-granularity progress bar on stderr
// during manifest verification, keeping stdout free for results.
package progress

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar tracks verification progress, one unit per manifest record.
type Bar struct {
	bar *progressbar.ProgressBar
}

// New creates a progress bar for total records. A hidden bar (for quiet
// mode or non-interactive runs) still accepts updates and renders
// nothing.
func New(total int, visible bool) *Bar {
	b := progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("verifying"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(120*time.Millisecond),
		progressbar.OptionSetVisibility(visible),
	)

	return &Bar{bar: b}
}

// Increment advances the bar by one record.
func (b *Bar) Increment() {
	_ = b.bar.Add(1)
}

// Describe updates the bar's description, e.g. with the file currently
// being hashed.
func (b *Bar) Describe(text string) {
	b.bar.Describe(text)
}

// Finish completes the bar and moves the cursor past it.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}
