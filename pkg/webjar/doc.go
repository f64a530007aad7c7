// SPDX-License-Identifier: MPL-2.0

// Package webjar defines the value types shared by the webjars locator:
// package identities, URL prefix chains, descriptor formats, canonical
// module-loader configs, and the diagnostics produced while resolving them.
package webjar
