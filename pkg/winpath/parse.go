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

// Package winpath decomposes Windows-style path strings into their root,
// directory components, file name and extension without touching the
// filesystem. Paths are parsed once; every accessor on the resulting value
// works over precomputed component offsets.
package winpath

import (
	"fmt"
	"strings"
)

// Separator is the canonical directory separator. Forward slashes are
// accepted on input and rewritten, except after a \\?\ or \\.\ prefix.
const Separator = '\\'

const (
	longPrefix    = `\\?\`
	longUNCPrefix = `\\?\UNC\`
	devicePrefix  = `\\.\`
)

// RootKind classifies the non-decomposable prefix of a parsed path.
// Exactly one kind holds for any path.
type RootKind uint8

const (
	// RootNone marks an unrooted (relative) path.
	RootNone RootKind = iota
	// RootDrive marks a drive-letter path such as C:\dir or the
	// drive-relative form C:dir.
	RootDrive
	// RootUNC marks a network path \\server\share\...
	RootUNC
	// RootLongUNC marks a long-path network path \\?\UNC\server\share\...
	RootLongUNC
	// RootVolume marks a volume-GUID path \\?\Volume{...}\...
	RootVolume
	// RootDevice marks the remaining \\?\ and \\.\ forms, e.g. \\?\C:\dir
	// or \\.\PhysicalDrive0.
	RootDevice
	// RootSeparator marks a path rooted at a bare separator, e.g. \dir.
	RootSeparator
)

func (k RootKind) String() string {
	switch k {
	case RootNone:
		return "unrooted"
	case RootDrive:
		return "drive"
	case RootUNC:
		return "unc"
	case RootLongUNC:
		return "long-unc"
	case RootVolume:
		return "volume"
	case RootDevice:
		return "device"
	case RootSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// parsed is the outcome of a single left-to-right scan. comps[0] is the
// length of the root; each following entry is the offset immediately after a
// directory separator, so comps[len-1] is where the file-name segment starts.
// A trailing separator shows up as a final entry equal to len(s). ext is the
// offset of the extension dot inside the file name, or len(s) when the file
// name has none.
type parsed struct {
	s     string
	comps []int
	ext   int
	kind  RootKind
}

func parse(raw string, wildcards bool) (parsed, error) {
	if raw == "" {
		return parsed{comps: []int{0}}, nil
	}
	if hasLongUNCPrefix(raw) {
		return parseLongUNC(raw, wildcards)
	}
	if strings.HasPrefix(raw, longPrefix) || strings.HasPrefix(raw, devicePrefix) {
		return parseLiteral(raw)
	}

	s := strings.ReplaceAll(raw, "/", string(Separator))

	if strings.HasPrefix(s, `\\`) {
		return parseUNC(s, wildcards)
	}

	var (
		rootLen int
		kind    RootKind
	)
	switch {
	case len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':':
		kind = RootDrive
		switch {
		case len(s) == 2:
			s += string(Separator) // bare C: becomes C:\
			rootLen = 3
		case s[2] == Separator:
			rootLen = 3
		default:
			rootLen = 2 // drive-relative C:foo, no separator inserted
		}
	case s[0] == Separator:
		kind = RootSeparator
		rootLen = 1
	default:
		kind = RootNone
	}

	comps, err := scanComponents(s, rootLen, wildcards)
	if err != nil {
		return parsed{}, err
	}
	return parsed{s: s, comps: comps, ext: extIndex(s, comps[len(comps)-1]), kind: kind}, nil
}

// hasLongUNCPrefix reports a \\?\UNC\ prefix. The UNC token is matched
// case-insensitively; the prefix itself must use backslashes.
func hasLongUNCPrefix(s string) bool {
	return len(s) >= len(longUNCPrefix) &&
		s[:4] == longPrefix &&
		equalFoldASCII(s[4:7], "UNC") &&
		s[7] == Separator
}

func parseLongUNC(raw string, wildcards bool) (parsed, error) {
	rest := strings.ReplaceAll(raw[len(longUNCPrefix):], "/", string(Separator))
	s := raw[:len(longUNCPrefix)] + rest

	server, share, end, err := splitShare(rest, s)
	if err != nil {
		return parsed{}, err
	}
	if err := checkSegment(server, s); err != nil {
		return parsed{}, err
	}
	if err := checkSegment(share, s); err != nil {
		return parsed{}, err
	}

	rootLen := len(longUNCPrefix) + end
	// canonical bare UNC root carries no trailing separator
	if rootLen == len(s)-1 && s[rootLen] == Separator {
		s = s[:rootLen]
	}

	comps, err := scanComponents(s, rootLen, wildcards)
	if err != nil {
		return parsed{}, err
	}
	return parsed{s: s, comps: comps, ext: extIndex(s, comps[len(comps)-1]), kind: RootLongUNC}, nil
}

func parseUNC(s string, wildcards bool) (parsed, error) {
	server, share, end, err := splitShare(s[2:], s)
	if err != nil {
		return parsed{}, err
	}
	if err := checkSegment(server, s); err != nil {
		return parsed{}, err
	}
	if err := checkSegment(share, s); err != nil {
		return parsed{}, err
	}

	rootLen := 2 + end
	if rootLen == len(s)-1 && s[rootLen] == Separator {
		s = s[:rootLen]
	}

	comps, err := scanComponents(s, rootLen, wildcards)
	if err != nil {
		return parsed{}, err
	}
	return parsed{s: s, comps: comps, ext: extIndex(s, comps[len(comps)-1]), kind: RootUNC}, nil
}

// splitShare extracts the server and share segments from rest, the input with
// its UNC prefix removed. end is the offset within rest of the separator that
// terminates the share, or len(rest) when the share runs to the end.
func splitShare(rest, path string) (server, share string, end int, err error) {
	i := strings.IndexByte(rest, Separator)
	if i < 0 {
		return "", "", 0, fmt.Errorf("%w: UNC path %q has no share segment", ErrSyntax, path)
	}
	if i == 0 {
		return "", "", 0, fmt.Errorf("%w: UNC path %q has an empty server segment", ErrSyntax, path)
	}
	server = rest[:i]

	j := strings.IndexByte(rest[i+1:], Separator)
	if j < 0 {
		share = rest[i+1:]
		end = len(rest)
	} else {
		share = rest[i+1 : i+1+j]
		end = i + 1 + j
	}
	if share == "" {
		return "", "", 0, fmt.Errorf("%w: UNC path %q has an empty share segment", ErrSyntax, path)
	}
	return server, share, end, nil
}

// parseLiteral handles \\?\ and \\.\ paths. Everything after the prefix is
// taken verbatim: no slash rewriting, no character or wildcard checks. Only
// backslashes delimit components.
func parseLiteral(raw string) (parsed, error) {
	rest := raw[4:]
	if rest == "" {
		return parsed{}, fmt.Errorf("%w: %q has no volume component", ErrSyntax, raw)
	}
	comp := rest
	rootLen := len(raw)
	if i := strings.IndexByte(rest, Separator); i >= 0 {
		if i == 0 {
			return parsed{}, fmt.Errorf("%w: %q has an empty volume component", ErrSyntax, raw)
		}
		comp = rest[:i]
		rootLen = 4 + i
	}

	kind := RootDevice
	if raw[:4] == longPrefix && isVolumeGUID(comp) {
		kind = RootVolume
	}

	comps := []int{rootLen}
	for i := rootLen; i < len(raw); i++ {
		if raw[i] == Separator {
			comps = append(comps, i+1)
		}
	}
	return parsed{s: raw, comps: comps, ext: extIndex(raw, comps[len(comps)-1]), kind: kind}, nil
}

func isVolumeGUID(comp string) bool {
	return len(comp) > len("Volume{") &&
		equalFoldASCII(comp[:len("Volume{")], "Volume{") &&
		comp[len(comp)-1] == '}'
}

// scanComponents records an index after every separator from rootLen onward
// and rejects characters that cannot appear in a path segment. Wildcards are
// legal only in the final segment, and only when wildcards is true.
func scanComponents(s string, rootLen int, wildcards bool) ([]int, error) {
	comps := make([]int, 1, 8)
	comps[0] = rootLen

	wildcardSeen := false
	for i := rootLen; i < len(s); i++ {
		c := s[i]
		switch {
		case c == Separator:
			if wildcardSeen {
				return nil, fmt.Errorf("%w: wildcard outside the final segment of %q", ErrSyntax, s)
			}
			comps = append(comps, i+1)
		case c == '*' || c == '?':
			if !wildcards {
				return nil, fmt.Errorf("%w: wildcard character %q in %q", ErrSyntax, c, s)
			}
			wildcardSeen = true
		case invalidChar(c):
			return nil, fmt.Errorf("%w: character %q not allowed in %q", ErrSyntax, c, s)
		}
	}
	return comps, nil
}

// checkSegment validates a UNC server or share name, where wildcards are
// never legal.
func checkSegment(seg, path string) error {
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if invalidChar(c) || c == '*' || c == '?' {
			return fmt.Errorf("%w: character %q not allowed in %q", ErrSyntax, c, path)
		}
	}
	return nil
}

func invalidChar(c byte) bool {
	return c < 0x20 || c == '<' || c == '>' || c == '"' || c == '|'
}

// extIndex locates the extension dot of the file name starting at nameStart.
// A dot at nameStart itself marks a dot-file, not an extension. Returns
// len(s) when the file name has no extension.
func extIndex(s string, nameStart int) int {
	for i := len(s) - 1; i > nameStart; i-- {
		if s[i] == '.' {
			return i
		}
	}
	return len(s)
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'a' <= ca && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if 'a' <= cb && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
