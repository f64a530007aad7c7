// SPDX-License-Identifier: MPL-2.0

package webjar

import (
	"errors"
	"strings"
)

// Resource path conventions shared with the webjars packaging format.
// Marker files decide a package's descriptor format; assets live under a
// fixed id/version directory layout.
const (
	// AssetPathPrefix is the root under which every webjar's content lives.
	AssetPathPrefix = "META-INF/resources/webjars"
	// NpmMarkerPrefix is the marker namespace for npm-packaged webjars.
	NpmMarkerPrefix = "META-INF/maven/org.webjars.npm"
	// BowerMarkerPrefix is the marker namespace for bower-packaged webjars.
	BowerMarkerPrefix = "META-INF/maven/org.webjars.bower"
	// ClassicMarkerPrefix is the marker namespace for classic (legacy) webjars.
	ClassicMarkerPrefix = "META-INF/maven/org.webjars"
)

// ErrEmptyChain is returned when a prefix chain with no entries is validated.
var ErrEmptyChain = errors.New("prefix chain has no entries")

type (
	// PackageRef is the immutable identity of one resolvable webjar.
	PackageRef struct {
		// ID is the unique package identifier (e.g., "jquery").
		ID string
		// Version is the installed version string (e.g., "2.1.0").
		Version string
	}

	// Prefix is one fallback location in a prefix chain. Location is the
	// literal URL prefix (trailing slash included by the caller, e.g.
	// "/webjars/" or "https://cdn.example.com/webjars/"); IncludeVersion
	// controls whether the version segment appears in rewritten paths.
	Prefix struct {
		Location       string
		IncludeVersion bool
	}

	// PrefixChain is an ordered sequence of fallback prefixes. The first
	// entry is the most preferred location (typically a CDN), the last the
	// canonical local path. Order is caller-controlled and never re-sorted.
	PrefixChain []Prefix
)

// AssetPath returns the resource path of a file inside this package's
// versioned content directory.
func (r PackageRef) AssetPath(name string) string {
	return AssetPathPrefix + "/" + r.ID + "/" + r.Version + "/" + name
}

// String returns "id version" for log and error messages.
func (r PackageRef) String() string {
	return r.ID + " " + r.Version
}

// Validate reports whether the chain can be used for path rewriting.
// An empty chain is a legal degenerate value but invalid for rewriting.
func (c PrefixChain) Validate() error {
	if len(c) == 0 {
		return ErrEmptyChain
	}
	return nil
}

// Key returns a normalized representation of the chain, suitable as a
// cache key. Two chains with the same prefixes in the same order always
// produce the same key.
func (c PrefixChain) Key() string {
	var b strings.Builder
	for _, p := range c {
		b.WriteString(p.Location)
		if p.IncludeVersion {
			b.WriteString("\x00v")
		} else {
			b.WriteString("\x00-")
		}
		b.WriteString("\x1e")
	}
	return b.String()
}
