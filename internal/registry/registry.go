// SPDX-License-Identifier: MPL-2.0

// Package registry discovers installed webjars in a resource store.
// Every webjar is a directory META-INF/resources/webjars/<id>/<version>/;
// the registry turns that layout into an ordered id -> version mapping.
package registry

import (
	"errors"
	"io/fs"

	"webjars-locator/internal/resource"
	"webjars-locator/pkg/webjar"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry lists the webjars installed in one resource store.
type Registry struct {
	store resource.Store
}

// New creates a Registry over the given store.
func New(store resource.Store) *Registry {
	return &Registry{store: store}
}

// WebJars returns the installed packages ordered by id. Ids are unique:
// when the same id appears in several roots of a chained store, the first
// occurrence wins. An empty store yields an empty (non-nil) slice, not an
// error.
func (r *Registry) WebJars() ([]webjar.PackageRef, error) {
	entries, err := r.store.ReadDir(webjar.AssetPathPrefix)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []webjar.PackageRef{}, nil
		}
		return nil, err
	}

	versions := make(map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		if _, seen := versions[id]; seen {
			continue
		}
		version, ok := r.versionOf(id)
		if !ok {
			continue
		}
		versions[id] = version
	}

	ids := maps.Keys(versions)
	slices.Sort(ids)

	refs := make([]webjar.PackageRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, webjar.PackageRef{ID: id, Version: versions[id]})
	}
	return refs, nil
}

// versionOf returns the version directory of a webjar id. A webjar ships
// exactly one version; should several directories exist, the first entry
// wins. ReadDir yields sorted names per root and chain order across
// roots, so the pick is deterministic and honors store precedence.
func (r *Registry) versionOf(id string) (string, bool) {
	entries, err := r.store.ReadDir(webjar.AssetPathPrefix + "/" + id)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return entry.Name(), true
		}
	}
	return "", false
}
