// SPDX-License-Identifier: MPL-2.0

package webjar

import (
	"errors"
	"testing"
)

func TestPackageRef_AssetPath(t *testing.T) {
	t.Parallel()

	ref := PackageRef{ID: "jquery", Version: "2.1.0"}
	if got, want := ref.AssetPath("jquery.js"), "META-INF/resources/webjars/jquery/2.1.0/jquery.js"; got != want {
		t.Errorf("AssetPath = %s, want %s", got, want)
	}
	if got, want := ref.AssetPath("dist/core.min.js"), "META-INF/resources/webjars/jquery/2.1.0/dist/core.min.js"; got != want {
		t.Errorf("AssetPath = %s, want %s", got, want)
	}
	if got, want := ref.String(), "jquery 2.1.0"; got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format     Format
		name       string
		markerPath string
	}{
		{FormatNpm, "npm", "META-INF/maven/org.webjars.npm/x/pom.xml"},
		{FormatBower, "bower", "META-INF/maven/org.webjars.bower/x/pom.xml"},
		{FormatLegacy, "legacy", "META-INF/maven/org.webjars/x/pom.xml"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.name {
			t.Errorf("%d.String() = %s, want %s", tt.format, got, tt.name)
		}
		if got := tt.format.MarkerPath("x"); got != tt.markerPath {
			t.Errorf("%s.MarkerPath(x) = %s, want %s", tt.name, got, tt.markerPath)
		}
	}
	if got := Format(42).String(); got != "unknown" {
		t.Errorf("out-of-range String() = %s, want unknown", got)
	}
}

func TestPrefixChain_Validate(t *testing.T) {
	t.Parallel()

	if err := (PrefixChain{}).Validate(); !errors.Is(err, ErrEmptyChain) {
		t.Errorf("empty chain Validate = %v, want ErrEmptyChain", err)
	}
	if err := (PrefixChain{{Location: "/webjars/", IncludeVersion: true}}).Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestPrefixChain_Key(t *testing.T) {
	t.Parallel()

	a := PrefixChain{
		{Location: "https://cdn.example.com/webjars/", IncludeVersion: true},
		{Location: "/webjars/", IncludeVersion: true},
	}
	same := PrefixChain{
		{Location: "https://cdn.example.com/webjars/", IncludeVersion: true},
		{Location: "/webjars/", IncludeVersion: true},
	}
	if a.Key() != same.Key() {
		t.Error("equal chains must share a key")
	}

	distinct := []PrefixChain{
		a,
		{{Location: "/webjars/", IncludeVersion: true}, {Location: "https://cdn.example.com/webjars/", IncludeVersion: true}},
		{{Location: "/webjars/", IncludeVersion: true}},
		{{Location: "/webjars/", IncludeVersion: false}},
		{},
	}
	seen := make(map[string]int)
	for i, chain := range distinct {
		key := chain.Key()
		if prev, dup := seen[key]; dup {
			t.Errorf("chains %d and %d collide on key %q", prev, i, key)
		}
		seen[key] = i
	}
}
