// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package lint

import (
	"bufio"
	"io"
	"strings"

	"github.com/ostafen/winpath/internal/logger"
	"github.com/ostafen/winpath/pkg/winpath"
)

type Options struct {
	// Wildcards permits * and ? in the file-name segment.
	Wildcards bool
	// MaxLen rejects paths longer than this many bytes; 0 disables the check.
	MaxLen int
	// Reserved flags components colliding with reserved device names.
	Reserved bool
	LogLevel logger.Level
}

// Report counts the outcome of a lint run. A path contributes to at most one
// failure counter; syntax errors take precedence.
type Report struct {
	Checked  int
	Invalid  int
	TooLong  int
	Reserved int
}

func (r Report) Clean() bool {
	return r.Invalid == 0 && r.TooLong == 0 && r.Reserved == 0
}

func (r Report) Failed() int {
	return r.Invalid + r.TooLong + r.Reserved
}

// Run validates one path per line from r, skipping blank lines and
// #-comments, and reports per-line findings to w.
func Run(r io.Reader, w io.Writer, opts Options) (Report, error) {
	log := logger.New(w, opts.LogLevel)

	var rep Report
	line := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		rep.Checked++
		lintLine(log, &rep, line, raw, opts)
	}
	return rep, sc.Err()
}

func lintLine(log *logger.Logger, rep *Report, line int, raw string, opts Options) {
	parse := winpath.Parse
	if opts.Wildcards {
		parse = winpath.ParseWildcard
	}

	p, err := parse(raw)
	if err != nil {
		rep.Invalid++
		log.Errorf("line %d: %v", line, err)
		return
	}

	if opts.MaxLen > 0 {
		if err := winpath.CheckLen(p, opts.MaxLen); err != nil {
			rep.TooLong++
			log.Warnf("line %d: %v", line, err)
			return
		}
	}

	if opts.Reserved {
		for _, comp := range p.Components() {
			if winpath.ReservedName(comp) {
				rep.Reserved++
				log.Warnf("line %d: component %q is a reserved device name", line, comp)
				return
			}
		}
	}

	log.Debugf("line %d: ok kind=%s root=%q file=%q", line, p.Kind(), p.Root(), p.FileName())
}
