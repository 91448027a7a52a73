// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"io"
	"time"
)

/* ------------ tiny UI helper for single-line item progress ------------ */

// ItemProgress renders a one-line counter on w while the sync loop walks the
// breed items. Zero total falls back to a spinner.
type ItemProgress struct {
	w        io.Writer
	label    string
	total    int
	done     int
	spinIdx  int
	lastTick time.Time
}

var spinner = []rune{'|', '/', '-', '\\'}

func NewItemProgress(w io.Writer, label string, total int) *ItemProgress {
	return &ItemProgress{w: w, label: label, total: total}
}

func (ip *ItemProgress) Advance() {
	ip.done++
	ip.render(false)
}

func (ip *ItemProgress) render(force bool) {
	if ip.w == nil {
		return
	}
	// throttling: update ~10 times per second to avoid spamming
	if !force && time.Since(ip.lastTick) < 100*time.Millisecond {
		return
	}
	ip.lastTick = time.Now()

	if ip.total > 0 {
		fmt.Fprintf(ip.w, "\r%s: %d/%d   ", ip.label, ip.done, ip.total)
	} else {
		ch := spinner[ip.spinIdx%len(spinner)]
		ip.spinIdx++
		fmt.Fprintf(ip.w, "\r%s: [%c] %d done   ", ip.label, ch, ip.done)
	}
}

func (ip *ItemProgress) Done() {
	if ip.w == nil {
		return
	}
	ip.render(true)
	fmt.Fprintln(ip.w)
}
