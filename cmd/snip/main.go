package main

import "github.com/MichaelAyles/kicad-snippets/cmd/snip/cmd"

func main() {
	cmd.Execute()
}
