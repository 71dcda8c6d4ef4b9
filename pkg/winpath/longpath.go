package winpath

import "fmt"

// FullPath resolves the path to a fully rooted form. Unrooted paths are
// joined onto the injected current directory; separator-rooted paths take the
// current directory's root; drive-relative paths (C:foo) are anchored at
// their drive root. Paths that are already fully rooted come back unchanged,
// and cwd may be nil for them.
func (p Path) FullPath(cwd CurrentDirFunc) (Path, error) {
	switch {
	case p.p.kind == RootNone:
		base, err := currentDir(cwd)
		if err != nil {
			return Path{}, err
		}
		return base.Join(p)
	case p.p.kind == RootSeparator:
		base, err := currentDir(cwd)
		if err != nil {
			return Path{}, err
		}
		root := base.Root()
		if root[len(root)-1] != Separator {
			root += string(Separator)
		}
		np, err := parse(root+p.p.s[1:], true)
		if err != nil {
			return Path{}, err
		}
		return Path{p: np}, nil
	case p.p.kind == RootDrive && p.rootLen() == 2:
		np, err := parse(p.p.s[:2]+string(Separator)+p.p.s[2:], true)
		if err != nil {
			return Path{}, err
		}
		return Path{p: np}, nil
	default:
		return p, nil
	}
}

// LongPath converts the path to its long-path (\\?\) form. The conversion is
// idempotent: long, volume-GUID and device paths pass through untouched. UNC
// paths are rewritten to \\?\UNC\server\..., everything else is resolved via
// FullPath first and then prefixed.
func (p Path) LongPath(cwd CurrentDirFunc) (Path, error) {
	switch p.p.kind {
	case RootLongUNC, RootVolume, RootDevice:
		return p, nil
	case RootUNC:
		return p.toLongUNC()
	default:
		fp, err := p.FullPath(cwd)
		if err != nil {
			return Path{}, err
		}
		switch fp.p.kind {
		case RootLongUNC, RootVolume, RootDevice:
			return fp, nil
		case RootUNC:
			return fp.toLongUNC()
		}
		np, err := parse(longPrefix+fp.p.s, true)
		if err != nil {
			return Path{}, err
		}
		return Path{p: np}, nil
	}
}

// toLongUNC rewrites \\server\... to \\?\UNC\server\...
func (p Path) toLongUNC() (Path, error) {
	np, err := parse(longPrefix+"UNC"+p.p.s[1:], true)
	if err != nil {
		return Path{}, err
	}
	return Path{p: np}, nil
}

func currentDir(cwd CurrentDirFunc) (Path, error) {
	if cwd == nil {
		return Path{}, fmt.Errorf("%w: nil current-directory capability", ErrInvalidArgument)
	}
	dir, err := cwd()
	if err != nil {
		return Path{}, fmt.Errorf("current directory: %w", err)
	}
	base, err := Parse(dir)
	if err != nil {
		return Path{}, err
	}
	if !base.IsRooted() {
		return Path{}, fmt.Errorf("%w: current directory %q is not rooted", ErrInvalidArgument, dir)
	}
	return base, nil
}
