// SPDX-License-Identifier: MPL-2.0

// Package requirejs resolves a unified RequireJS loader configuration for
// a set of installed webjars. Packages ship their loader metadata in one
// of three incompatible descriptor formats (npm package.json, bower.json,
// or legacy pom.xml-embedded config); the engine normalizes all three into
// one canonical shape and rewrites every embedded path according to a
// caller-supplied chain of fallback URL prefixes.
//
// Resolution is always best-effort: a missing, malformed, or incomplete
// descriptor marks that one package unresolved and surfaces a diagnostic,
// never an error that aborts the batch.
package requirejs
