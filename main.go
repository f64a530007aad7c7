// SPDX-License-Identifier: MPL-2.0

package main

import cmd "webjars-locator/cmd/webjars"

func main() {
	cmd.Execute()
}
