/*
sparqlrepl is an interactive read-eval-print loop for the SPARQL grammar
parser: a readline input loop that feeds each line to
sparqlparse.ParseQuery/ParseUpdate and pretty-prints the resulting parse
tree (or reports the structured parse error) via pterm.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the grafdb/sparqlgo authors.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/grafdb/sparqlgo/internal/xlog"
	"github.com/grafdb/sparqlgo/sparqlparse"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

func main() {
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	update := flag.Bool("update", false, "Parse input as UpdateUnit instead of QueryUnit")
	flag.Parse()

	xlog.Styled()
	xlog.Init(xlog.LevelFromString(*tlevel))
	pterm.Info.Println("Welcome to sparqlrepl")

	repl, err := readline.New("sparql> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		evalOne(input, *update)
	}

	pterm.Info.Println(`Enter a SPARQL query (or ":update" to switch modes). Quit with <ctrl>D`)
	mode := *update
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":update":
			mode = true
			pterm.Info.Println("switched to UpdateUnit mode")
			continue
		case line == ":query":
			mode = false
			pterm.Info.Println("switched to QueryUnit mode")
			continue
		}
		evalOne(line, mode)
	}
	fmt.Println("Good bye!")
}

func evalOne(input string, update bool) {
	var tr *tree.Tree
	var consumed int
	var err error
	if update {
		tr, consumed, err = sparqlparse.ParseUpdate(input)
	} else {
		tr, consumed, err = sparqlparse.ParseQuery(input)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Printfln("parsed %d bytes", consumed)
	printTree(tr, tr.Root(), 0)
}

// printTree renders idx and its subtree, one line per node, indented by
// depth — a pretty-printed equivalent of trepl's "tree" command, here
// built in without needing an s-expression evaluator around it.
func printTree(tr *tree.Tree, idx tree.Index, depth int) {
	if idx < 0 {
		return
	}
	n := tr.Node(idx)
	name := "?"
	if n.Rule != nil {
		name = n.Rule.Name
	}
	fmt.Printf("%s%s %s\n", strings.Repeat("  ", depth), name, tr.Span(idx))
	for c := tree.Index(n.Child); c >= 0; {
		printTree(tr, c, depth+1)
		c = tree.Index(tr.Node(c).Sibling)
	}
}
