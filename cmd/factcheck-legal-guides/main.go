// Command factcheck-legal-guides checks country codes, names and flags in the
// legal-guide table against ISO 3166-1.
package main

import "namecheck/internal/cli"

func main() {
	cli.Main(cli.NewCommand(
		"factcheck-legal-guides",
		"Legal guide fact-check",
		"Fact-check legal-guide countries against ISO 3166-1",
		cli.LegalGuides,
	))
}
