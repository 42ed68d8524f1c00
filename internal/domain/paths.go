package domain

import (
	"fmt"
	"path"
	"strings"
)

// DefaultPlaceholderExt is assumed when a debug name carries no extension
const DefaultPlaceholderExt = ".wav"

// NormalizeSlashes converts backslashes to forward slashes
func NormalizeSlashes(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// CleanRel cleans a slash-separated relative path and rejects anything that
// would resolve outside the directory it is joined to.
func CleanRel(rel string) (string, error) {
	clean := path.Clean(NormalizeSlashes(rel))
	switch {
	case clean == "." || clean == "":
		return "", fmt.Errorf("%q: %w", rel, ErrUnsafePath)
	case path.IsAbs(clean), clean == "..", strings.HasPrefix(clean, "../"):
		return "", fmt.Errorf("%q: %w", rel, ErrUnsafePath)
	case len(clean) >= 2 && clean[1] == ':':
		return "", fmt.Errorf("%q: %w", rel, ErrUnsafePath)
	}
	return clean, nil
}

// splitName returns the directory and extension-less stem of a slash path
func splitName(p string) (dir, stem string) {
	dir = path.Dir(p)
	base := path.Base(p)
	stem = strings.TrimSuffix(base, path.Ext(base))
	return dir, stem
}

func joinRel(dir, name string) string {
	if dir == "." || dir == "" {
		return name
	}
	return dir + "/" + name
}

// ForwardRelPath is the debug-named location of an asset: the directory and
// stem come from the debug name but the extension comes from the opaque ID.
//
//	ForwardRelPath("Foo/123.wem", "Bar/Line_01.wav") == "Bar/Line_01.wem"
func ForwardRelPath(id, debugName string) string {
	dir, stem := splitName(debugName)
	return joinRel(dir, stem+path.Ext(id))
}

// PlaceholderExt is the extension a debug name carries, or DefaultPlaceholderExt
func PlaceholderExt(debugName string) string {
	if ext := path.Ext(path.Base(debugName)); ext != "" {
		return ext
	}
	return DefaultPlaceholderExt
}

// ReverseCandidates lists, in priority order, the relative paths where a
// debug-named file may live when moving it back to its opaque ID. The nested
// layout written by a forward run is tried before the flat layout, and the
// real asset extension before the placeholder one.
func ReverseCandidates(id, debugName string) []string {
	dir, stem := splitName(debugName)
	exts := []string{path.Ext(id), PlaceholderExt(debugName)}

	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, ext := range exts {
		add(joinRel(dir, stem+ext))
	}
	for _, ext := range exts {
		add(stem + ext)
	}
	return out
}
