// Command csreq decodes Apple code requirement data and prints the
// rendered DSL, the way `csreq -r- -t` does for the system tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	macho "github.com/fooblahblah/codereq"
	"github.com/fooblahblah/codereq/pkg/codesign/types/requirement"
)

func main() {
	blob := flag.Bool("b", false, "input is a single raw requirement blob (csreq -b output) instead of a Mach-O binary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-b] <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *blob {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("csreq: %v", err)
		}
		printBlob(data)
		return
	}
	printMachO(flag.Arg(0))
}

func printBlob(data []byte) {
	exprs, tail, err := requirement.DecodeRequirementBlob(data)
	if err != nil {
		log.Fatalf("csreq: failed to decode requirement blob: %v", err)
	}
	if len(tail) != 0 {
		fmt.Fprintf(os.Stderr, "csreq: warning: %d trailing bytes after requirement blob\n", len(tail))
	}
	for _, e := range exprs {
		fmt.Println(e)
	}
}

func printMachO(path string) {
	f, err := macho.Open(path)
	if err != nil {
		log.Fatalf("csreq: %v", err)
	}
	defer f.Close()

	cs := f.CodeSignature()
	if cs == nil {
		log.Fatalf("csreq: %s carries no code signature", path)
	}
	if len(cs.Requirements) == 0 {
		fmt.Println("(no requirements)")
		return
	}
	for _, req := range cs.Requirements {
		fmt.Printf("%s: %s\n", req.Type, req.Detail)
	}
}
