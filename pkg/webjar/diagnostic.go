// SPDX-License-Identifier: MPL-2.0

package webjar

const (
	// SeverityWarning indicates a recoverable resolution condition.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal resolution error diagnostic.
	SeverityError Severity = "error"
)

const (
	// CodeNoFormatMarker means no descriptor marker was found for a package.
	CodeNoFormatMarker DiagnosticCode = "no_format_marker"
	// CodeDescriptorMissing means the expected descriptor resource is absent.
	CodeDescriptorMissing DiagnosticCode = "descriptor_missing"
	// CodeDescriptorMalformed means the descriptor could not be parsed or
	// had the wrong top-level shape.
	CodeDescriptorMalformed DiagnosticCode = "descriptor_malformed"
	// CodeNoEntryPoint means the descriptor was parseable but named no
	// usable entry file (no main, no index.js).
	CodeNoEntryPoint DiagnosticCode = "no_entry_point"
	// CodePathValueSkipped means one paths entry had an unusable value and
	// was skipped while the rest of the config was still rewritten.
	CodePathValueSkipped DiagnosticCode = "path_value_skipped"
	// CodeLegacyScript means a package fell back to its raw legacy
	// webjars-requirejs.js configuration.
	CodeLegacyScript DiagnosticCode = "legacy_script"
	// CodeLegacyScriptUnreadable means the legacy script resource exists
	// but could not be read.
	CodeLegacyScriptUnreadable DiagnosticCode = "legacy_script_unreadable"
	// CodeEmptyRegistry means the package registry produced zero packages.
	CodeEmptyRegistry DiagnosticCode = "empty_registry"
)

type (
	// Severity represents resolution diagnostic severity.
	Severity string

	// DiagnosticCode is a machine-readable diagnostic identifier.
	DiagnosticCode string

	// Diagnostic is a structured record of a non-fatal resolution
	// condition. Resolution is always best-effort: no condition described
	// by a Diagnostic ever aborts processing of other packages.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is the machine-readable identifier.
		Code DiagnosticCode
		// Message is the human-readable description.
		Message string
		// Package identifies the webjar the condition applies to
		// (zero value for batch-level conditions).
		Package PackageRef
		// Cause is the underlying error (optional).
		Cause error
	}
)

// Warn builds a warning diagnostic for a package.
func Warn(code DiagnosticCode, ref PackageRef, message string, cause error) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Package: ref, Cause: cause}
}

// Error builds an error diagnostic for a package.
func Error(code DiagnosticCode, ref PackageRef, message string, cause error) Diagnostic {
	return Diagnostic{Severity: SeverityError, Code: code, Message: message, Package: ref, Cause: cause}
}
