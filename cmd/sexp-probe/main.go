// sexp-probe cross-checks the in-tree S-expression parser against the
// chewxy/sexp package on a schematic file: top-level expression counts,
// leading tags and any divergence in parse outcome. Useful when a user
// reports a paste that one path accepts and the other rejects.
package main

import (
	"fmt"
	"os"

	chewxy "github.com/chewxy/sexp"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/sexpr"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sexp-probe <schematic_file>")
		os.Exit(1)
	}

	filename := os.Args[1]
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	text := string(data)
	fmt.Printf("File size: %d bytes\n", len(data))

	fmt.Println("\nIn-tree parser (sexpr.ParseAll):")
	nodes, err := sexpr.ParseAll(text)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
	} else {
		fmt.Printf("  Parsed %d top-level expression(s)\n", len(nodes))
		for i, n := range nodes {
			if list, ok := n.(*sexpr.List); ok {
				fmt.Printf("  #%d: (%s ...) with %d children\n", i+1, list.Tag(), len(list.Items))
			} else {
				fmt.Printf("  #%d: leaf %s\n", i+1, n)
			}
		}
	}

	fmt.Println("\nchewxy/sexp (sexp.ParseString):")
	sexps, chewErr := chewxy.ParseString(text)
	if chewErr != nil {
		fmt.Printf("  Error: %v\n", chewErr)
	} else {
		fmt.Printf("  Parsed %d s-expression(s)\n", len(sexps))
		for i, s := range sexps {
			if i >= 3 {
				fmt.Printf("  ... %d more\n", len(sexps)-3)
				break
			}
			fmt.Printf("  #%d: leaf=%v leafCount=%d\n", i+1, s.IsLeaf(), s.LeafCount())
		}
	}

	if (err == nil) != (chewErr == nil) {
		fmt.Println("\nParsers disagree on this input")
	}
}
