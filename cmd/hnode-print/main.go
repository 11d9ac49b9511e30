// Command hnode-print renders a tree described in hnode's JSON surface
// form with the measured-document pretty-printer.
package main

import "github.com/akinomyoga/oil/pkg/cli"

func main() {
	cli.Main()
}
