/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/
package main

import (
	"github.com/jpl-au/docsite/cmd"

	// Extensions register their commands via init()
	_ "github.com/jpl-au/docsite/extension/all"
)

func main() {
	cmd.Execute()
}
