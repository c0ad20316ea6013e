package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal with glamour. The raw
// markdown is printed instead when -plain is set or rendering fails.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("markdown rendering failed: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
