// flags.go defines constants for CLI flag names shared across extensions.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

const (
	// Boolean flags

	FlagCount          = "count"              // Count matches only
	FlagDiff           = "diff"               // Show diff output
	FlagDryRun         = "dry-run"            // Validate without making changes
	FlagFilesWithMatch = "files-with-matches" // Output matching paths only
	FlagHTML           = "html"               // Render page as HTML
	FlagIgnoreCase     = "ignore-case"        // Case-insensitive matching
	FlagInvertMatch    = "invert-match"       // Select non-matching lines
	FlagLocal          = "local"              // Use local scope
	FlagPaths          = "paths"              // Output file paths only
	FlagRaw            = "raw"                // Raw output without rendering
	FlagSection        = "section"            // Proposal is a section or subsection
	FlagShort          = "short"              // Abbreviated output

	// String flags

	FlagAddr  = "addr"  // Listen address
	FlagFile  = "file"  // Output or input file
	FlagLines = "lines" // Line range such as 3:5
	FlagPath  = "path"  // Parent location of a proposal
	FlagSince = "since" // Age limit such as 7d

	// Integer flags

	FlagContext = "context" // Lines of context around matches
	FlagLimit   = "limit"   // Limit number of results
)
