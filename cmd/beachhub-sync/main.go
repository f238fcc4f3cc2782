// Command beachhub-sync refreshes the tournament dataset from the source
// site. Exits 0 when nothing changed, 2 when new tournaments were found,
// and 1 on error, so wrapper scripts can chain the announcer.
package main

import (
	"github.com/sandpoint/beachhub/internal/cli"
)

func main() {
	cli.Execute()
}
