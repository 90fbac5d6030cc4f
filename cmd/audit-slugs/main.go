// Command audit-slugs checks that mapping and alias targets resolve to name
// records, and reports duplicate slugs and Quranic names without citations.
package main

import "namecheck/internal/cli"

func main() {
	cli.Main(cli.NewCommand(
		"audit-slugs",
		"Slug resolution audit",
		"Check slug references across name, alias and mapping tables",
		cli.Slugs,
	))
}
