// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"strings"

	"webjars-locator/internal/resource"
	"webjars-locator/pkg/webjar"

	"github.com/flynn/json5"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// legacyResolver handles classic webjars whose RequireJS config is a
// lenient-JSON object embedded in the pom.xml requirejs property.
type legacyResolver struct {
	store resource.Store
}

// resolve parses the embedded config and rewrites its paths. Parse
// failures and a missing pom both yield an empty config (never nil, never
// a fatal error): the aggregator treats an empty config as unresolved and
// falls back to the package's legacy script, exactly like a package that
// never declared a config.
func (l *legacyResolver) resolve(ref webjar.PackageRef, chain webjar.PrefixChain) (*webjar.ModuleConfig, []webjar.Diagnostic) {
	cfg := webjar.NewModuleConfig()

	raw, diags := l.rawConfig(ref)

	var tree map[string]any
	if err := json5.Unmarshal([]byte(raw), &tree); err != nil || tree == nil {
		if raw != "" {
			// only report a parse error when there was a config to parse
			diags = append(diags, webjar.Error(webjar.CodeDescriptorMalformed, ref,
				"could not parse the requirejs config from the pom.xml meta-data", err))
		}
		return cfg, diags
	}

	paths, pathDiags := l.rewritePaths(ref, chain, tree["paths"])
	cfg.Set("paths", paths)
	diags = append(diags, pathDiags...)

	cfg.Set("packages", l.rewritePackages(ref, chain, tree["packages"]))

	// every other top-level field passes through unmodified
	keys := maps.Keys(tree)
	slices.Sort(keys)
	for _, key := range keys {
		if key == "paths" || key == "packages" {
			continue
		}
		cfg.Set(key, tree[key])
	}

	return cfg, diags
}

// rewritePaths rebuilds the paths object. Each entry's single original
// relative path (first element of an array value, or the scalar string
// itself) is replaced by the rewriter's output for every prefix in the
// chain, plus the bare original path appended last. That final bare entry
// is a legacy-only fallback; the bower/npm resolvers do not produce it.
func (l *legacyResolver) rewritePaths(ref webjar.PackageRef, chain webjar.PrefixChain, raw any) (*webjar.PathMap, []webjar.Diagnostic) {
	rewritten := webjar.NewPathMap()

	obj, ok := raw.(map[string]any)
	if !ok {
		return rewritten, nil
	}

	var diags []webjar.Diagnostic
	keys := maps.Keys(obj)
	slices.Sort(keys)
	for _, key := range keys {
		original, ok := originalPath(obj[key])
		if !ok {
			diags = append(diags, webjar.Error(webjar.CodePathValueSkipped, ref,
				"the path for "+key+" could not be parsed and was skipped", nil))
			continue
		}
		rewritten.Set(key, append(Rewrite(ref, original, chain), original))
	}
	return rewritten, diags
}

// rewritePackages rebuilds the packages array. Entries with a location
// string get it rewritten using only the last prefix in the chain: the
// last prefix is the canonical local path, and pointing package-relative
// sub-resources at a CDN when only the top-level entry should be
// CDN-hosted would break them. This is a known approximation. Entries
// without a resolvable location pass through unchanged.
func (l *legacyResolver) rewritePackages(ref webjar.PackageRef, chain webjar.PrefixChain, raw any) []any {
	rewritten := []any{}

	arr, ok := raw.([]any)
	if !ok {
		return rewritten
	}

	for _, entry := range arr {
		if obj, ok := entry.(map[string]any); ok && len(chain) > 0 {
			if location, ok := obj["location"].(string); ok {
				last := chain[len(chain)-1]
				newLocation := last.Location + ref.ID
				if last.IncludeVersion {
					newLocation += "/" + ref.Version
				}
				obj["location"] = newLocation + "/" + location
			}
		}
		rewritten = append(rewritten, entry)
	}
	return rewritten
}

// originalPath extracts the single original relative path from a paths
// entry value: the first element of an array, or the scalar string.
func originalPath(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// rawConfig extracts the requirejs property text from the package's
// classic pom.xml. A missing or unparseable pom yields "" plus a warning
// diagnostic, never an error.
func (l *legacyResolver) rawConfig(ref webjar.PackageRef) (string, []webjar.Diagnostic) {
	name := webjar.ClassicMarkerPrefix + "/" + ref.ID + "/pom.xml"
	rc, err := l.store.Open(name)
	if err != nil {
		code := webjar.CodeDescriptorMissing
		if !errors.Is(err, fs.ErrNotExist) {
			code = webjar.CodeDescriptorMalformed
		}
		return "", []webjar.Diagnostic{webjar.Warn(code, ref,
			"could not read the requirejs config from the pom.xml meta-data", err)}
	}
	defer rc.Close()

	raw, err := requireJSProperty(rc)
	if err != nil {
		return "", []webjar.Diagnostic{webjar.Warn(webjar.CodeDescriptorMalformed, ref,
			"could not read the requirejs config from the pom.xml meta-data", err)}
	}
	return raw, nil
}

// requireJSProperty walks pom XML tokens looking for
// <properties><requirejs>...</requirejs></properties> and returns the
// text content of the first match. No match yields "".
func requireJSProperty(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	inProperties := false
	depth := 0 // element nesting depth inside <properties>
	var requirejs *strings.Builder

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if !inProperties {
				if t.Name.Local == "properties" {
					inProperties = true
					depth = 0
				}
				continue
			}
			depth++
			if t.Name.Local == "requirejs" && depth == 1 {
				requirejs = &strings.Builder{}
			}
		case xml.EndElement:
			if !inProperties {
				continue
			}
			if t.Name.Local == "properties" && depth == 0 {
				inProperties = false
				continue
			}
			if requirejs != nil && t.Name.Local == "requirejs" && depth == 1 {
				return requirejs.String(), nil
			}
			depth--
		case xml.CharData:
			if requirejs != nil {
				requirejs.Write(t)
			}
		}
	}
}
