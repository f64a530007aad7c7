// SPDX-License-Identifier: MPL-2.0

package requirejs

import "testing"

func TestSelectMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		candidates  []string
		packageName string
		want        string
	}{
		{
			name:        "single candidate wins unconditionally",
			candidates:  []string{"styles.css"},
			packageName: "bootstrap",
			want:        "styles.css",
		},
		{
			name:        "closest name wins over minified variant",
			candidates:  []string{"foo.min.js", "foo.js"},
			packageName: "foo",
			want:        "foo.js",
		},
		{
			name:        "non-js candidates filtered out",
			candidates:  []string{"schema-form.css", "dist/schema-form.js"},
			packageName: "angular-schema-form",
			want:        "dist/schema-form.js",
		},
		{
			name:        "filter falling empty keeps full set",
			candidates:  []string{"a.css", "b.css"},
			packageName: "a",
			want:        "a.css",
		},
		{
			name:        "tie breaks to earliest candidate",
			candidates:  []string{"aa.js", "ab.js"},
			packageName: "ac",
			want:        "aa.js",
		},
		{
			name:        "comparison is case-insensitive",
			candidates:  []string{"OTHER.JS", "JQUERY.JS"},
			packageName: "jquery",
			want:        "JQUERY.JS",
		},
		{
			name:        "repeated entries resolve like their first occurrence",
			candidates:  []string{"b.js", "a.js", "a.js", "b.js"},
			packageName: "a",
			want:        "a.js",
		},
		{
			name:        "empty input returns empty string",
			candidates:  nil,
			packageName: "x",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SelectMain(tt.candidates, tt.packageName)
			if got != tt.want {
				t.Errorf("SelectMain(%v, %q) = %q, want %q", tt.candidates, tt.packageName, got, tt.want)
			}
		})
	}
}

func TestSelectMain_Deterministic(t *testing.T) {
	t.Parallel()

	candidates := []string{"dist/angular.js", "angular.min.js", "angular.js", "angular.css"}
	first := SelectMain(candidates, "angular")
	for i := 0; i < 50; i++ {
		if got := SelectMain(candidates, "angular"); got != first {
			t.Fatalf("SelectMain is not deterministic: %q then %q", first, got)
		}
	}
}
