// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"strings"

	"webjars-locator/internal/resource"
	"webjars-locator/pkg/webjar"

	"github.com/flynn/json5"
)

// mainFileResolver handles bower and npm webjars. Both formats share the
// same algorithm and differ only in the descriptor file name (bower.json
// vs package.json): the descriptor's name field becomes the module name
// and its main field (directly, via the main-candidate selector, or via
// an index.js probe) becomes the single entry path.
//
// Dependency shim generation is deliberately not implemented: the
// resolver never inspects a package's declared dependencies.
type mainFileResolver struct {
	store      resource.Store
	descriptor string
}

func (m *mainFileResolver) resolve(ref webjar.PackageRef, chain webjar.PrefixChain) (*webjar.ModuleConfig, []webjar.Diagnostic) {
	data, err := resource.ReadAll(m.store, ref.AssetPath(m.descriptor))
	if err != nil {
		// no descriptor, no config; the package is simply unresolved
		return nil, []webjar.Diagnostic{webjar.Warn(webjar.CodeDescriptorMissing, ref,
			"could not read "+m.descriptor, err)}
	}

	var tree map[string]any
	if err := json5.Unmarshal(data, &tree); err != nil || tree == nil {
		return nil, []webjar.Diagnostic{webjar.Error(webjar.CodeDescriptorMalformed, ref,
			"could not parse "+m.descriptor, err)}
	}

	name, ok := tree["name"].(string)
	if !ok || name == "" {
		return nil, []webjar.Diagnostic{webjar.Error(webjar.CodeDescriptorMalformed, ref,
			m.descriptor+" has no usable name field", nil)}
	}

	entry, ok := m.entryCandidate(ref, tree, name)
	if !ok {
		return nil, []webjar.Diagnostic{webjar.Warn(webjar.CodeNoEntryPoint, ref,
			"not enough information in "+m.descriptor+" to pick an entry point", nil)}
	}

	// module names must not contain dots: the loader would misread them
	// as nested-path separators
	moduleName := strings.ReplaceAll(name, ".", "-")

	paths := webjar.NewPathMap()
	paths.Set(moduleName, Rewrite(ref, normalizeEntry(entry), chain))

	cfg := webjar.NewModuleConfig()
	cfg.Set("paths", paths)
	return cfg, nil
}

// entryCandidate picks the single entry file from the descriptor's main
// field. A missing or null main falls back to probing for an index.js at
// the package root; an array main goes through the selection heuristic.
func (m *mainFileResolver) entryCandidate(ref webjar.PackageRef, tree map[string]any, name string) (string, bool) {
	main, present := tree["main"]
	if !present || main == nil {
		if m.store.Exists(ref.AssetPath("index.js")) {
			return "index.js", true
		}
		return "", false
	}

	switch v := main.(type) {
	case string:
		return v, true
	case []any:
		var candidates []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				candidates = append(candidates, s)
			}
		}
		if len(candidates) == 0 {
			return "", false
		}
		return SelectMain(candidates, name), true
	default:
		return "", false
	}
}

// normalizeEntry strips a trailing .js suffix and a leading ./ so the
// entry is a RequireJS-style module path.
func normalizeEntry(entry string) string {
	entry = strings.TrimSuffix(entry, ".js")
	entry = strings.TrimPrefix(entry, "./")
	return entry
}
