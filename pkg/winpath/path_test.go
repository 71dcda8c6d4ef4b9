package winpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/winpath/pkg/winpath"
)

func mustParse(t *testing.T, raw string) winpath.Path {
	t.Helper()

	p, err := winpath.Parse(raw)
	require.NoError(t, err)
	return p
}

func TestPath_Accessors(t *testing.T) {
	p := mustParse(t, `C:\foo\bar.txt`)

	require.Equal(t, `C:\`, p.Root())
	require.Equal(t, `bar.txt`, p.FileName())
	require.Equal(t, `bar`, p.FileNameWithoutExt())
	require.Equal(t, `.txt`, p.Ext())
	require.True(t, p.HasExt())
	require.True(t, p.HasFileName())

	dir, ok := p.Dir()
	require.True(t, ok)
	require.Equal(t, `C:\foo`, dir)

	dir, ok = p.SuffixedDir()
	require.True(t, ok)
	require.Equal(t, `C:\foo\`, dir)

	require.Equal(t, `foo`, p.DirWithoutRoot())
	require.Equal(t, `foo\`, p.SuffixedDirWithoutRoot())
}

func TestPath_DirOfRootFile(t *testing.T) {
	p := mustParse(t, `C:\bar.txt`)

	dir, ok := p.Dir()
	require.True(t, ok)
	require.Equal(t, `C:\`, dir)
	require.Equal(t, ``, p.DirWithoutRoot())

	p = mustParse(t, `\\server\share\bar.txt`)
	dir, ok = p.Dir()
	require.True(t, ok)
	require.Equal(t, `\\server\share`, dir)
}

func TestPath_DirOfBareRoot(t *testing.T) {
	// the directory of a bare root (and of the empty path) is undefined
	for _, raw := range []string{`C:\`, `C:`, `\\server\share`, `\\?\C:`, ``} {
		p := mustParse(t, raw)
		_, ok := p.Dir()
		require.False(t, ok, raw)
		_, ok = p.SuffixedDir()
		require.False(t, ok, raw)
	}

	// an unrooted bare file name has an empty directory, not an undefined one
	p := mustParse(t, `bar.txt`)
	dir, ok := p.Dir()
	require.True(t, ok)
	require.Equal(t, ``, dir)
}

func TestPath_ParentChain(t *testing.T) {
	p := mustParse(t, `C:\a\b\c.txt`)

	p = p.Parent()
	require.Equal(t, `C:\a\b`, p.String())
	p = p.Parent()
	require.Equal(t, `C:\a`, p.String())
	p = p.Parent()
	require.Equal(t, `C:\`, p.String())
	p = p.Parent()
	require.Equal(t, `C:\`, p.String())
}

func TestPath_ParentTrailingSeparator(t *testing.T) {
	require.Equal(t, `C:\a`, mustParse(t, `C:\a\b\`).Parent().String())
	require.Equal(t, `C:\`, mustParse(t, `C:\a\`).Parent().String())
	require.Equal(t, `\\srv\sh`, mustParse(t, `\\srv\sh\a\`).Parent().String())
}

func TestPath_ParentUnrooted(t *testing.T) {
	p := mustParse(t, `a\b`)

	p = p.Parent()
	require.Equal(t, `a`, p.String())
	p = p.Parent()
	require.Equal(t, ``, p.String())
	p = p.Parent()
	require.Equal(t, ``, p.String())
}

func TestPath_ParentRecomputesExtension(t *testing.T) {
	p := mustParse(t, `C:\dir.d\file`).Parent()
	require.Equal(t, `C:\dir.d`, p.String())
	require.Equal(t, `dir.d`, p.FileName())
	require.Equal(t, `.d`, p.Ext())
}

func TestPath_RoundTrip(t *testing.T) {
	// combine(parent(p), fileName(p)) must reproduce p for any rooted path
	// with a file name
	for _, raw := range []string{
		`C:\a\b\c.txt`,
		`C:\file.txt`,
		`\\server\share\sub\file`,
		`\\server\share\file`,
		`\\?\UNC\server\share\deep\nested\x.bin`,
		`\\?\C:\dir\file.txt`,
		`\dir\file`,
	} {
		p := mustParse(t, raw)
		require.True(t, p.HasFileName(), raw)

		name, err := winpath.ParseWildcard(p.FileName())
		require.NoError(t, err, raw)

		got, err := p.Parent().Join(name)
		require.NoError(t, err, raw)
		require.True(t, got.Equal(p), "round-trip of %q gave %q", raw, got)
	}
}

func TestPath_ParentOfRootIdempotent(t *testing.T) {
	for _, raw := range []string{`C:\`, `\\server\share`, `\\?\C:`, `\`, ``} {
		p := mustParse(t, raw)
		require.True(t, p.Parent().Parent().Equal(p.Parent()), raw)
	}
}

func TestPath_JoinAbsorbsRooted(t *testing.T) {
	rooted := mustParse(t, `D:\data\x`)
	for _, raw := range []string{``, `rel`, `C:\other`, `\\srv\sh`} {
		p := mustParse(t, raw)
		got, err := p.Join(rooted)
		require.NoError(t, err, raw)
		require.Equal(t, rooted, got, raw)
	}
}

func TestPath_Join(t *testing.T) {
	tests := []struct {
		base, elem, want string
	}{
		{`C:\dir`, `file.txt`, `C:\dir\file.txt`},
		{`C:\dir\`, `file.txt`, `C:\dir\file.txt`},
		{`C:\`, `file.txt`, `C:\file.txt`},
		{`\\srv\sh`, `file.txt`, `\\srv\sh\file.txt`},
		{`rel`, `sub\x`, `rel\sub\x`},
		{``, `sub\x`, `sub\x`},
	}

	for _, tt := range tests {
		base := mustParse(t, tt.base)
		elem := mustParse(t, tt.elem)

		got, err := base.Join(elem)
		require.NoError(t, err)
		require.Equal(t, tt.want, got.String())
	}
}

func TestPath_JoinWildcardElem(t *testing.T) {
	base := mustParse(t, `C:\logs`)
	elem, err := winpath.ParseWildcard(`*.log`)
	require.NoError(t, err)

	got, err := base.Join(elem)
	require.NoError(t, err)
	require.Equal(t, `C:\logs\*.log`, got.String())
}

func TestPath_EqualityIsCaseInsensitive(t *testing.T) {
	a := mustParse(t, `C:\Foo\Bar.txt`)
	b := mustParse(t, `c:\foo\bar.TXT`)

	require.True(t, a.Equal(b))
	require.Equal(t, 0, a.Compare(b))
	require.Equal(t, a.Hash(), b.Hash())

	c := mustParse(t, `C:\foo\baz.txt`)
	require.False(t, a.Equal(c))
	require.Negative(t, a.Compare(c))
	require.Positive(t, c.Compare(a))
}

func TestPath_CompareOrdering(t *testing.T) {
	paths := []string{`C:\a`, `C:\A\b`, `C:\b`, `D:\`}
	for i := 0; i+1 < len(paths); i++ {
		a, b := mustParse(t, paths[i]), mustParse(t, paths[i+1])
		require.Negative(t, a.Compare(b), "%q < %q", paths[i], paths[i+1])
	}
}

func TestPath_FullPath(t *testing.T) {
	cwd := func() (string, error) { return `C:\home\user`, nil }

	got, err := mustParse(t, `docs\a.txt`).FullPath(cwd)
	require.NoError(t, err)
	require.Equal(t, `C:\home\user\docs\a.txt`, got.String())

	got, err = mustParse(t, `\temp\x`).FullPath(cwd)
	require.NoError(t, err)
	require.Equal(t, `C:\temp\x`, got.String())

	got, err = mustParse(t, `C:tmp`).FullPath(nil)
	require.NoError(t, err)
	require.Equal(t, `C:\tmp`, got.String())

	// already rooted: identity, capability unused
	p := mustParse(t, `D:\data`)
	got, err = p.FullPath(nil)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestPath_FullPathRequiresCapability(t *testing.T) {
	_, err := mustParse(t, `docs\a.txt`).FullPath(nil)
	require.ErrorIs(t, err, winpath.ErrInvalidArgument)
}

func TestPath_LongPath(t *testing.T) {
	cwd := func() (string, error) { return `C:\home`, nil }

	tests := []struct {
		raw  string
		want string
	}{
		{`C:\Users\x`, `\\?\C:\Users\x`},
		{`\\srv\sh\f`, `\\?\UNC\srv\sh\f`},
		{`\\?\C:\already`, `\\?\C:\already`},
		{`\\?\UNC\srv\sh\f`, `\\?\UNC\srv\sh\f`},
		{`\\.\C:`, `\\.\C:`},
		{`docs\a.txt`, `\\?\C:\home\docs\a.txt`},
		{`\temp\x`, `\\?\C:\temp\x`},
	}

	for _, tt := range tests {
		p := mustParse(t, tt.raw)
		got, err := p.LongPath(cwd)
		require.NoError(t, err, tt.raw)
		require.Equal(t, tt.want, got.String(), tt.raw)
	}
}

func TestPath_LongPathIdempotent(t *testing.T) {
	cwd := func() (string, error) { return `C:\home`, nil }

	for _, raw := range []string{
		`C:\Users\x`, `\\srv\sh\f`, `docs\a.txt`, `\\?\Volume{0000}\x`,
	} {
		once, err := mustParse(t, raw).LongPath(cwd)
		require.NoError(t, err, raw)
		twice, err := once.LongPath(cwd)
		require.NoError(t, err, raw)
		require.True(t, twice.Equal(once), raw)
	}
}

func TestPath_LongPathWithUNCCwd(t *testing.T) {
	cwd := func() (string, error) { return `\\srv\sh\wd`, nil }

	got, err := mustParse(t, `a.txt`).LongPath(cwd)
	require.NoError(t, err)
	require.Equal(t, `\\?\UNC\srv\sh\wd\a.txt`, got.String())
}
