// Package main provides the CLI entrypoint for brand-yml.
//
// brand-yml validates a brand document (_brand.yml) and turns it into the
// resolved values downstream tools need:
//   - check: validate and report diagnostics
//   - resolve: print the resolved document
//   - fonts: print web-font import URLs and font file faces
//   - css: write a stylesheet of custom properties and font rules
//   - show: preview colors and typography in the terminal
package main

import (
	"os"

	"github.com/charmbracelet/log"

	errUtils "brand-yml/errors"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Error(err)

		for _, hint := range errUtils.Hints(err) {
			log.Info("Hint", "hint", hint)
		}

		os.Exit(1)
	}
}
