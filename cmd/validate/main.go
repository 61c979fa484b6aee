// Command validate checks a content document without playing it. It
// runs the full decode and reports the first violation, using the same
// exit codes as the game itself.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/llm-quest/llmquest/pkg/decoder"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <document.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", filename, err)
		os.Exit(3)
	}

	gd, err := decoder.Decode(data)
	if err != nil {
		var contentErr *decoder.ContentError
		if errors.As(err, &contentErr) {
			fmt.Fprintf(os.Stderr, "Incorrect game data: %v\n", contentErr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Unable to parse JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Document is valid: %d rooms, objective `%s`, starting room `%s`.\n",
		len(gd.Rooms), gd.Objective.Name, gd.StartingRoom.Name)
}
