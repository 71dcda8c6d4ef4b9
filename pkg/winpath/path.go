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

package winpath

import (
	"encoding/binary"
	"hash/fnv"
	"unicode"
	"unicode/utf8"
)

// Path is an immutable, already-validated Windows path. The zero value is the
// empty unrooted path. Path values are safe for concurrent use.
type Path struct {
	p parsed
}

// CurrentDirFunc supplies the current working directory to FullPath and
// LongPath. It is an injected capability: the package never reads process
// state on its own.
type CurrentDirFunc func() (string, error)

// Parse builds a Path from raw. Wildcard characters are rejected everywhere.
func Parse(raw string) (Path, error) {
	p, err := parse(raw, false)
	if err != nil {
		return Path{}, err
	}
	return Path{p: p}, nil
}

// ParseWildcard is Parse with * and ? permitted in the final segment, for
// callers that pass patterns like dir\*.txt down to enumeration APIs.
func ParseWildcard(raw string) (Path, error) {
	p, err := parse(raw, true)
	if err != nil {
		return Path{}, err
	}
	return Path{p: p}, nil
}

// String returns the normalized path.
func (p Path) String() string { return p.p.s }

// Kind returns the root classification.
func (p Path) Kind() RootKind { return p.p.kind }

// IsRooted reports whether the path carries any root at all.
func (p Path) IsRooted() bool { return p.p.kind != RootNone }

// Root returns the normalized root: C:\ for drive paths, \\server\share for
// UNC paths (no trailing separator), the empty string for unrooted paths.
func (p Path) Root() string { return p.p.s[:p.rootLen()] }

// FileName returns the segment after the last separator; empty when the path
// ends in a separator or is a bare root.
func (p Path) FileName() string { return p.p.s[p.nameStart():] }

// HasFileName reports whether FileName is non-empty.
func (p Path) HasFileName() bool { return p.nameStart() < len(p.p.s) }

// Ext returns the extension including its dot, or the empty string. The
// leading dot of a dot-file such as .gitignore is not an extension marker.
func (p Path) Ext() string { return p.p.s[p.extStart():] }

// HasExt reports whether the file name carries an extension.
func (p Path) HasExt() bool { return p.extStart() < len(p.p.s) }

// FileNameWithoutExt returns the file name with its extension stripped.
func (p Path) FileNameWithoutExt() string { return p.p.s[p.nameStart():p.extStart()] }

// Dir returns the directory portion of the path: everything before the last
// separator preceding the file name, with the root's own separator kept
// (Dir of C:\file.txt is C:\). ok is false when the path is a bare root or
// empty, where the directory is undefined.
func (p Path) Dir() (dir string, ok bool) {
	c := p.p.comps
	switch {
	case len(c) <= 1 && p.nameStart() == len(p.p.s):
		return "", false
	case len(c) <= 1:
		return p.Root(), true
	default:
		return p.p.s[:c[len(c)-1]-1], true
	}
}

// SuffixedDir is Dir with the separator before the file name retained.
func (p Path) SuffixedDir() (dir string, ok bool) {
	c := p.p.comps
	switch {
	case len(c) <= 1 && p.nameStart() == len(p.p.s):
		return "", false
	case len(c) <= 1:
		return p.Root(), true
	default:
		return p.p.s[:c[len(c)-1]], true
	}
}

// DirWithoutRoot returns the directory portion with the root prefix
// stripped; empty when the path has no directory beyond its root.
func (p Path) DirWithoutRoot() string {
	c := p.p.comps
	if len(c) <= 1 {
		return ""
	}
	return trimLeadingSep(p.p.s[c[0] : c[len(c)-1]-1])
}

// SuffixedDirWithoutRoot is DirWithoutRoot with the trailing separator kept.
func (p Path) SuffixedDirWithoutRoot() string {
	c := p.p.comps
	if len(c) <= 1 {
		return ""
	}
	return trimLeadingSep(p.p.s[c[0]:c[len(c)-1]])
}

// Components returns the non-empty segments after the root, the file name
// included.
func (p Path) Components() []string {
	c := p.p.comps
	s := p.p.s
	out := make([]string, 0, len(c))
	for i := range c {
		end := len(s)
		if i+1 < len(c) {
			end = c[i+1] - 1
		}
		if seg := trimLeadingSep(s[c[i]:end]); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// Parent strips the file name if there is one, otherwise the last directory
// component. The parent of a bare rooted root is the root itself; the parent
// of the empty path is the empty path. The validated component indices are
// reused, only the extension offset is recomputed.
func (p Path) Parent() Path {
	c := p.p.comps
	s := p.p.s
	if len(c) == 0 {
		return Path{p: parsed{comps: []int{0}}}
	}

	if c[len(c)-1] < len(s) { // file name present
		if len(c) == 1 {
			if !p.IsRooted() {
				return Path{p: parsed{comps: []int{0}}}
			}
			root := s[:c[0]]
			return Path{p: parsed{s: root, comps: c[:1], ext: len(root), kind: p.p.kind}}
		}
		ns := s[:c[len(c)-1]-1]
		nc := c[:len(c)-1]
		return Path{p: parsed{s: ns, comps: nc, ext: extIndex(ns, nc[len(nc)-1]), kind: p.p.kind}}
	}

	// bare root (or empty path): the parent chain stops here
	if len(c) == 1 {
		return p
	}
	// trailing separator: drop the last directory component
	if len(c) == 2 {
		root := s[:c[0]]
		return Path{p: parsed{s: root, comps: c[:1], ext: len(root), kind: p.p.kind}}
	}
	ns := s[:c[len(c)-2]-1]
	nc := c[:len(c)-2]
	return Path{p: parsed{s: ns, comps: nc, ext: extIndex(ns, nc[len(nc)-1]), kind: p.p.kind}}
}

// Join combines p with other. A rooted other is returned unchanged, as is
// other when p is empty. Otherwise the two normalized strings are joined by
// exactly one separator and re-parsed with wildcards allowed, since other may
// carry a wildcard file name. Joining fails only when other holds a wildcard
// that would end up outside the final segment.
func (p Path) Join(other Path) (Path, error) {
	if other.IsRooted() || p.p.s == "" {
		return other, nil
	}
	s := p.p.s
	if s[len(s)-1] != Separator {
		s += string(Separator)
	}
	s += other.p.s

	np, err := parse(s, true)
	if err != nil {
		return Path{}, err
	}
	return Path{p: np}, nil
}

// Equal reports case-insensitive equality of the normalized paths.
func (p Path) Equal(other Path) bool { return p.Compare(other) == 0 }

// Compare orders paths by case-insensitive comparison of their normalized
// strings, rune by rune.
func (p Path) Compare(other Path) int { return foldCompare(p.p.s, other.p.s) }

// Hash returns a hash consistent with Equal: equal paths hash identically
// regardless of case.
func (p Path) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, r := range p.p.s {
		binary.LittleEndian.PutUint32(buf[:], uint32(unicode.ToUpper(r)))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func foldCompare(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		a, b = a[na:], b[nb:]

		ra, rb = unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) == len(b):
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func trimLeadingSep(s string) string {
	if s != "" && s[0] == Separator {
		return s[1:]
	}
	return s
}

func (p Path) rootLen() int {
	if len(p.p.comps) == 0 {
		return 0
	}
	return p.p.comps[0]
}

func (p Path) nameStart() int {
	if len(p.p.comps) == 0 {
		return 0
	}
	return p.p.comps[len(p.p.comps)-1]
}

func (p Path) extStart() int {
	if len(p.p.comps) == 0 {
		return 0
	}
	return p.p.ext
}
