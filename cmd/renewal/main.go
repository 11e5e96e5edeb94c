// Command renewal previews, inspects, scripts and renders carousels.
package main

import (
	"log"
	"os"

	"github.com/go-renewal/renewal/cmd/renewal/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("renewal: ")
	if err := cmd.Execute(os.Args[1:]); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
