package tokens

import (
	"strings"
)

const (
	// PathSeparator joins segments in the dotted path form.
	PathSeparator = "."
	// VarSeparator joins segments in CSS custom property names.
	VarSeparator = "-"
	// ChannelSuffix names the RGB companion of a colour variable.
	ChannelSuffix = "channel"
)

// Path addresses a node in a token tree, e.g. colors > palette > primary.
type Path []string

// ParsePath splits a dotted path. Empty segments are dropped.
func ParsePath(s string) Path {
	var p Path
	for _, seg := range strings.Split(s, PathSeparator) {
		if seg = strings.TrimSpace(seg); seg != "" {
			p = append(p, seg)
		}
	}
	return p
}

// Child returns a new path with seg appended; p is never modified.
func (p Path) Child(seg string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// HasPrefix reports whether p starts with prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// VarName is the custom property name without the leading "--".
func (p Path) VarName() string {
	return strings.Join(p, VarSeparator)
}

// ChannelVarName is the name of the "-channel" companion variable.
func (p Path) ChannelVarName() string {
	return p.VarName() + VarSeparator + ChannelSuffix
}

// VarRef returns var(--a-b-c).
func (p Path) VarRef() string {
	return "var(--" + p.VarName() + ")"
}

// ChannelVarRef returns var(--a-b-c-channel).
func (p Path) ChannelVarRef() string {
	return "var(--" + p.ChannelVarName() + ")"
}
