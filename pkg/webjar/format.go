// SPDX-License-Identifier: MPL-2.0

package webjar

// Format identifies which descriptor format a package ships its
// module-loader metadata in. Exactly one format applies per package.
type Format int

const (
	// FormatNpm is a package.json based webjar (org.webjars.npm).
	FormatNpm Format = iota
	// FormatBower is a bower.json based webjar (org.webjars.bower).
	FormatBower
	// FormatLegacy is a classic webjar carrying its config in the
	// pom.xml requirejs property (org.webjars).
	FormatLegacy
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatNpm:
		return "npm"
	case FormatBower:
		return "bower"
	case FormatLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// MarkerPath returns the marker resource whose existence identifies a
// package as using this format.
func (f Format) MarkerPath(id string) string {
	switch f {
	case FormatNpm:
		return NpmMarkerPrefix + "/" + id + "/pom.xml"
	case FormatBower:
		return BowerMarkerPrefix + "/" + id + "/pom.xml"
	default:
		return ClassicMarkerPrefix + "/" + id + "/pom.xml"
	}
}
