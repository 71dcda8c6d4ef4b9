package winpath

import "strings"

// Win32 reserves a set of device names that shadow real files in every
// directory (CON, NUL, COM1, ...). The lookup below uses a small
// prefix-marker table: each byte of the uppercased name advances a 16-bit
// hash and the table entry tells whether any reserved name continues through
// this prefix, so almost all names are rejected after one or two bytes
// without touching the map.
const markerTableSize = 1 << 16

const (
	markerNone = iota
	markerPrefix
	markerName
)

type nameTable struct {
	table [markerTableSize]byte
	names map[string]struct{}
}

func newNameTable(names ...string) *nameTable {
	t := &nameTable{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		var h uint16
		for i := 0; i < len(name); i++ {
			h = (h << 2) + uint16(name[i])
			t.table[h] = max(t.table[h], markerPrefix)
		}
		t.table[h] = markerName
		t.names[name] = struct{}{}
	}
	return t
}

// contains expects name already uppercased.
func (t *nameTable) contains(name string) bool {
	var h uint16
	for i := 0; i < len(name); i++ {
		h = (h << 2) + uint16(name[i])
		if t.table[h] == markerNone {
			return false
		}
	}
	if t.table[h] != markerName {
		return false
	}
	_, ok := t.names[name]
	return ok
}

var reservedNames = newNameTable(
	"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
)

// ReservedName reports whether name collides with a reserved Win32 device
// name, case-insensitively and with any extension ignored: CON, con.txt and
// "NUL  " all collide. Parse never enforces this, since \\?\ paths may
// legally address such names; callers decide.
func ReservedName(name string) bool {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimRight(name, " ")
	if len(name) < 3 || len(name) > 4 {
		return false
	}
	return reservedNames.contains(strings.ToUpper(name))
}

// HasReservedName reports whether the file name of p collides with a
// reserved device name.
func (p Path) HasReservedName() bool {
	return ReservedName(p.FileName())
}
