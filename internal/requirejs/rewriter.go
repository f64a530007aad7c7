// SPDX-License-Identifier: MPL-2.0

package requirejs

import "webjars-locator/pkg/webjar"

// Rewrite turns one package-relative path into the ordered list of
// candidate absolute URLs, one per prefix in chain order:
//
//	<location><id>[/<version>]/<relativePath>
//
// Output order matches chain order exactly; fallback priority is
// caller-controlled and never re-sorted here. Rewrite never fails: an odd
// relativePath still yields syntactically valid URLs, and an empty chain
// yields an empty list. Callers that need the bare relativePath as a final
// legacy-compatibility fallback append it themselves.
func Rewrite(ref webjar.PackageRef, relativePath string, chain webjar.PrefixChain) []string {
	urls := make([]string, 0, len(chain))
	for _, prefix := range chain {
		url := prefix.Location + ref.ID
		if prefix.IncludeVersion {
			url += "/" + ref.Version
		}
		url += "/" + relativePath
		urls = append(urls, url)
	}
	return urls
}
