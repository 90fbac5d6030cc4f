// Command audit-quran-refs checks every Quranic citation of every name record
// against the canonical surah table.
package main

import "namecheck/internal/cli"

func main() {
	cli.Main(cli.NewCommand(
		"audit-quran-refs",
		"Quran reference audit",
		"Validate surah/ayah citations on name records",
		cli.QuranRefs,
	))
}
