// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"testing"

	"webjars-locator/pkg/webjar"
)

func TestEngine_Classify(t *testing.T) {
	t.Parallel()

	store := legacyStore(map[string]string{
		"META-INF/maven/org.webjars.npm/lodash/pom.xml":    `<project/>`,
		"META-INF/maven/org.webjars.bower/angular/pom.xml": `<project/>`,
		"META-INF/maven/org.webjars/jquery/pom.xml":        `<project/>`,
		// markers in every namespace: npm must win
		"META-INF/maven/org.webjars.npm/both/pom.xml":   `<project/>`,
		"META-INF/maven/org.webjars.bower/both/pom.xml": `<project/>`,
		"META-INF/maven/org.webjars/both/pom.xml":       `<project/>`,
		// bower and legacy markers: bower must win
		"META-INF/maven/org.webjars.bower/pair/pom.xml": `<project/>`,
		"META-INF/maven/org.webjars/pair/pom.xml":       `<project/>`,
	})
	e := New(store, nil, nil)

	tests := []struct {
		id     string
		want   webjar.Format
		wantOK bool
	}{
		{"lodash", webjar.FormatNpm, true},
		{"angular", webjar.FormatBower, true},
		{"jquery", webjar.FormatLegacy, true},
		{"both", webjar.FormatNpm, true},
		{"pair", webjar.FormatBower, true},
		{"unknown", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			got, ok := e.Classify(tt.id)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Classify(%q) = %v, %v; want %v, %v", tt.id, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEngine_ResolveDispatch(t *testing.T) {
	t.Parallel()

	store := legacyStore(map[string]string{
		"META-INF/maven/org.webjars.npm/lodash/pom.xml":               `<project/>`,
		"META-INF/resources/webjars/lodash/4.17.21/package.json":      `{"name": "lodash", "main": "lodash.js"}`,
		"META-INF/maven/org.webjars.bower/angular/pom.xml":            `<project/>`,
		"META-INF/resources/webjars/angular/1.5.0/bower.json":         `{"name": "angular", "main": "./angular.js"}`,
		"META-INF/maven/org.webjars/jquery/pom.xml":                   jqueryPom,
	})
	e := New(store, nil, nil)
	chain := webjar.PrefixChain{{Location: "/webjars/", IncludeVersion: true}}

	tests := []struct {
		ref      webjar.PackageRef
		module   string
		wantFrom string
	}{
		{webjar.PackageRef{ID: "lodash", Version: "4.17.21"}, "lodash", "/webjars/lodash/4.17.21/lodash"},
		{webjar.PackageRef{ID: "angular", Version: "1.5.0"}, "angular", "/webjars/angular/1.5.0/angular"},
		{webjar.PackageRef{ID: "jquery", Version: "2.1.4"}, "jquery", "/webjars/jquery/2.1.4/jquery"},
	}
	for _, tt := range tests {
		t.Run(tt.ref.ID, func(t *testing.T) {
			t.Parallel()
			cfg, diags := e.Resolve(tt.ref, chain)
			if cfg == nil {
				t.Fatalf("Resolve(%s) returned nil config, diagnostics %v", tt.ref, diags)
			}
			urls, ok := cfg.Paths().Get(tt.module)
			if !ok || len(urls) == 0 || urls[0] != tt.wantFrom {
				t.Errorf("paths[%s] = %v (ok=%v), want first entry %s", tt.module, urls, ok, tt.wantFrom)
			}
		})
	}
}

func TestEngine_ResolveUnmarked(t *testing.T) {
	t.Parallel()

	e := New(legacyStore(nil), nil, nil)
	cfg, diags := e.Resolve(
		webjar.PackageRef{ID: "ghost", Version: "1.0.0"},
		webjar.PrefixChain{{Location: "/webjars/", IncludeVersion: true}},
	)
	if cfg != nil {
		t.Fatalf("expected nil config for unmarked package, got %v", cfg.Keys())
	}
	if len(diags) != 1 || diags[0].Code != webjar.CodeNoFormatMarker {
		t.Errorf("diagnostics = %v, want one %q", diags, webjar.CodeNoFormatMarker)
	}
}

func TestEngine_ResolveNormalizesEmptyConfig(t *testing.T) {
	t.Parallel()

	// a legacy pom without a requirejs property resolves to an empty
	// config, which Resolve reports as nil
	store := legacyStore(map[string]string{
		"META-INF/maven/org.webjars/plain/pom.xml": `<project><properties><noop>x</noop></properties></project>`,
	})
	e := New(store, nil, nil)
	cfg, diags := e.Resolve(
		webjar.PackageRef{ID: "plain", Version: "1.0.0"},
		webjar.PrefixChain{{Location: "/webjars/", IncludeVersion: true}},
	)
	if cfg != nil {
		t.Errorf("expected nil config, got keys %v", cfg.Keys())
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}
