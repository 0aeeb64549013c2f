// Package all imports the built-in docsite extensions. Import it for its
// side effects to register every command.
package all

import (
	// each registers itself via init()
	_ "github.com/jpl-au/docsite/extension/core"
	_ "github.com/jpl-au/docsite/extension/navigation"
	_ "github.com/jpl-au/docsite/extension/page"
	_ "github.com/jpl-au/docsite/extension/site"
)
