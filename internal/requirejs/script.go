// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// setupScriptTemplate is the self-contained loader setup block. It
// defines the version listing, the deprecated webjars.path() helper, the
// deprecated webjars! plugin loader, and finally one requirejs.config()
// statement per resolved package followed by the raw legacy blocks.
const setupScriptTemplate = `var webjars = {
    versions: {{.Versions}},
    path: function(webJarId, path) {
        console.error('The webjars.path() method of getting a WebJar path has been deprecated.  The RequireJS config in the ' + webJarId + ' WebJar may need to be updated.  Please file an issue: http://github.com/webjars/' + webJarId + '/issues/new');
        return {{.PathArray}};
    }
};

var require = {
    callback: function() {
        // Deprecated WebJars RequireJS plugin loader
        define('webjars', function() {
            return {
                load: function(name, req, onload, config) {
                    if (name.indexOf('.js') >= 0) {
                        console.warn('Detected a legacy file name (' + name + ') as the thing to load.  Loading via file name is no longer supported so the .js will be dropped in an effort to resolve the module name instead.');
                        name = name.replace('.js', '');
                    }
                    console.error('The webjars plugin loader (e.g. webjars!' + name + ') has been deprecated.  The RequireJS config in the ' + name + ' WebJar may need to be updated.  Please file an issue: http://github.com/webjars/webjars/issues/new');
                    req([name], function() {
                        onload();
                    });
                }
            }
        });

        // All of the WebJar configs
{{range .ConfigBlocks}}
{{.}}{{end}}{{range .LegacyBlocks}}
{{.}}{{end}}    }
};`

var setupScript = template.Must(template.New("setup").Parse(setupScriptTemplate))

// scriptContext is the rendering context handed to the template.
type scriptContext struct {
	Versions     string
	PathArray    string
	ConfigBlocks []string
	LegacyBlocks []string
}

// Script renders the aggregate as an embeddable setup script. The result
// is syntactically valid standalone JavaScript usable as the sole loader
// configuration source for a page.
func (a *Aggregate) Script() (string, error) {
	ctx := scriptContext{
		Versions:  a.versionsObject(),
		PathArray: a.pathArray(),
	}

	for _, outcome := range a.Outcomes {
		switch {
		case outcome.Config != nil:
			cfg, err := json.Marshal(outcome.Config)
			if err != nil {
				return "", fmt.Errorf("serialize config for %s: %w", outcome.Ref.ID, err)
			}
			ctx.ConfigBlocks = append(ctx.ConfigBlocks, "requirejs.config("+string(cfg)+");")
		case outcome.LegacyScript != "":
			ctx.LegacyBlocks = append(ctx.LegacyBlocks, outcome.LegacyScript)
		}
	}

	var buf bytes.Buffer
	if err := setupScript.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("render setup script: %w", err)
	}
	return buf.String(), nil
}

// versionsObject writes the id -> version JSON object. Every discovered
// package appears, resolved or not, in registry order.
func (a *Aggregate) versionsObject() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, outcome := range a.Outcomes {
		if i > 0 {
			b.WriteByte(',')
		}
		id, _ := json.Marshal(outcome.Ref.ID)
		version, _ := json.Marshal(outcome.Ref.Version)
		b.Write(id)
		b.WriteByte(':')
		b.Write(version)
	}
	b.WriteByte('}')
	return b.String()
}

// pathArray writes the JavaScript array expression returned by the
// deprecated webjars.path() helper, one candidate per prefix.
func (a *Aggregate) pathArray() string {
	const base = "webJarId + '/' + webjars.versions[webJarId] + '/' + path"

	var b strings.Builder
	b.WriteByte('[')
	for i, prefix := range a.chain {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("'" + prefix.Location + "' + " + base)
	}
	b.WriteByte(']')
	return b.String()
}
