// Command audit runs the Quran reference, slug and legal-guide checkers into
// one report.
package main

import "namecheck/internal/cli"

func main() {
	cli.Main(cli.NewCommand(
		"audit",
		"Content audit",
		"Run every checker into one report",
		cli.QuranRefs, cli.Slugs, cli.LegalGuides,
	))
}
