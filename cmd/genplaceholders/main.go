package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/jumpman/internal/placeholders"
)

func main() {
	out := flag.String("out", "assets", "directory receiving the generated textures")
	flag.Parse()

	fmt.Println("Jumpman Placeholder Graphics Generator")
	fmt.Println("======================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
}
