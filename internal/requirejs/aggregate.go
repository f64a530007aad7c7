// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	"webjars-locator/pkg/webjar"
)

type (
	// Outcome is the per-package resolution result: either a usable
	// config, or nothing plus (for packages shipping one) a raw legacy
	// script block. Packages with neither are still listed in version
	// output but contribute no loader configuration.
	Outcome struct {
		// Ref identifies the package.
		Ref webjar.PackageRef
		// Config is the canonical module config, nil when unresolved.
		Config *webjar.ModuleConfig
		// LegacyScript is the package's raw webjars-requirejs.js content
		// with a generated header comment, "" when not applicable.
		LegacyScript string
	}

	// Aggregate is the full batch result for one prefix chain: every
	// package from the registry in registry order, plus the diagnostics
	// collected along the way.
	Aggregate struct {
		// Outcomes holds one entry per registry package, in registry order.
		Outcomes []Outcome
		// Diagnostics are all non-fatal conditions seen during the batch.
		Diagnostics []webjar.Diagnostic

		chain webjar.PrefixChain
	}
)

// Aggregate resolves every package from the registry for the given prefix
// chain. Per-package failures never unwind the batch; only a registry
// read failure is an error. The result's iteration order is the
// registry's order.
func (e *Engine) Aggregate(chain webjar.PrefixChain) (*Aggregate, error) {
	refs, err := e.registry.WebJars()
	if err != nil {
		return nil, err
	}

	agg := &Aggregate{chain: chain, Outcomes: make([]Outcome, 0, len(refs))}

	if len(refs) == 0 {
		diag := webjar.Diagnostic{
			Severity: webjar.SeverityWarning,
			Code:     webjar.CodeEmptyRegistry,
			Message:  "no webjars found, the RequireJS configuration will be empty",
		}
		e.logger.Warn(diag.Message)
		agg.Diagnostics = append(agg.Diagnostics, diag)
	}

	for _, ref := range refs {
		cfg, diags := e.Resolve(ref, chain)
		outcome := Outcome{Ref: ref, Config: cfg}
		if cfg == nil {
			script, scriptDiags := e.legacyScript(ref)
			outcome.LegacyScript = script
			diags = append(diags, scriptDiags...)
		}
		agg.Outcomes = append(agg.Outcomes, outcome)
		agg.Diagnostics = append(agg.Diagnostics, diags...)
	}

	return agg, nil
}

// legacyScript reads a package's raw webjars-requirejs.js config and
// prefixes it with a generated header identifying the source package.
// Packages without one contribute nothing and are silently omitted.
func (e *Engine) legacyScript(ref webjar.PackageRef) (string, []webjar.Diagnostic) {
	name := ref.AssetPath("webjars-requirejs.js")
	rc, err := e.store.Open(name)
	if err != nil {
		return "", nil
	}
	defer rc.Close()

	diag := webjar.Warn(webjar.CodeLegacyScript, ref,
		"the "+ref.String()+" webjar is using the legacy RequireJS config", nil)
	e.logDiagnostic(diag)
	diags := []webjar.Diagnostic{diag}

	var b strings.Builder
	b.WriteString("// WebJar config for " + ref.ID + "\n")
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		readDiag := webjar.Warn(webjar.CodeLegacyScriptUnreadable, ref, name+" could not be read", err)
		e.logDiagnostic(readDiag)
		return "", append(diags, readDiag)
	}

	return b.String(), diags
}

// MarshalJSON writes the JSON-shaped API output: a package-id keyed
// object in registry order, holding each resolved package's module
// config. Unresolved packages are excluded entirely.
func (a *Aggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, outcome := range a.Outcomes {
		if outcome.Config == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(outcome.Ref.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(outcome.Config)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Config returns the resolved module config for a package id, or nil.
func (a *Aggregate) Config(id string) *webjar.ModuleConfig {
	for _, outcome := range a.Outcomes {
		if outcome.Ref.ID == id {
			return outcome.Config
		}
	}
	return nil
}
