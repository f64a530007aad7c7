// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"io"

	"webjars-locator/internal/resource"
	"webjars-locator/pkg/webjar"

	"github.com/charmbracelet/log"
)

// aggregateCacheSize bounds the number of distinct prefix chains whose
// aggregates stay memoized. Real deployments use one or two call patterns
// (local-only, CDN+local), so entries are effectively permanent.
const aggregateCacheSize = 16

type (
	// Lister is the package registry contract consumed by the engine:
	// an ordered, id-unique list of installed webjars.
	Lister interface {
		WebJars() ([]webjar.PackageRef, error)
	}

	// resolver turns one package's descriptor into a canonical module
	// config. Implementations never fail the batch: a nil config plus
	// diagnostics means the package is unresolved.
	resolver interface {
		resolve(ref webjar.PackageRef, chain webjar.PrefixChain) (*webjar.ModuleConfig, []webjar.Diagnostic)
	}

	// Engine resolves RequireJS configuration for all installed webjars.
	Engine struct {
		store     resource.Store
		registry  Lister
		logger    *log.Logger
		cache     *Cache
		resolvers map[webjar.Format]resolver
	}
)

// New creates an Engine over the given store and registry. A nil logger
// disables diagnostic logging.
func New(store resource.Store, registry Lister, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		store:    store,
		registry: registry,
		logger:   logger,
		cache:    NewCache(aggregateCacheSize),
		resolvers: map[webjar.Format]resolver{
			webjar.FormatNpm:    &mainFileResolver{store: store, descriptor: "package.json"},
			webjar.FormatBower:  &mainFileResolver{store: store, descriptor: "bower.json"},
			webjar.FormatLegacy: &legacyResolver{store: store},
		},
	}
}

// Classify determines a package's descriptor format from the marker
// resources present in the store. Priority is fixed: npm > bower >
// legacy, so a package shipping artifacts under multiple marker
// namespaces still resolves deterministically. A package with no marker
// returns ok=false, which is not an error.
func (e *Engine) Classify(id string) (webjar.Format, bool) {
	for _, format := range []webjar.Format{webjar.FormatNpm, webjar.FormatBower, webjar.FormatLegacy} {
		if e.store.Exists(format.MarkerPath(id)) {
			return format, true
		}
	}
	return 0, false
}

// Resolve dispatches one package to its format resolver and returns the
// canonical module config. A nil config means the package is unresolved;
// an empty config is normalized to nil since it signals "no usable
// metadata" rather than an intentionally empty configuration.
func (e *Engine) Resolve(ref webjar.PackageRef, chain webjar.PrefixChain) (*webjar.ModuleConfig, []webjar.Diagnostic) {
	format, ok := e.Classify(ref.ID)
	if !ok {
		diag := webjar.Warn(webjar.CodeNoFormatMarker, ref, "no descriptor marker found", nil)
		e.logDiagnostic(diag)
		return nil, []webjar.Diagnostic{diag}
	}

	cfg, diags := e.resolvers[format].resolve(ref, chain)
	for _, d := range diags {
		e.logDiagnostic(d)
	}
	if cfg != nil && cfg.Empty() {
		cfg = nil
	}
	return cfg, diags
}

func (e *Engine) logDiagnostic(d webjar.Diagnostic) {
	keyvals := []any{"webjar", d.Package.ID, "version", d.Package.Version, "code", string(d.Code)}
	if d.Cause != nil {
		keyvals = append(keyvals, "err", d.Cause)
	}
	switch d.Severity {
	case webjar.SeverityError:
		e.logger.Error(d.Message, keyvals...)
	default:
		e.logger.Warn(d.Message, keyvals...)
	}
}
