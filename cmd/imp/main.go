package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/laluxx/imp/pkg/compiler"
	"github.com/laluxx/imp/pkg/toolchain"
)

const (
	asmPath = "output.asm"
	exePath = "a.out"
)

func main() {
	stepShort := flag.Bool("s", false, "step through lexing in a window")
	stepLong := flag.Bool("step", false, "step through lexing in a window")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-s|--step] <source_file>\n", os.Args[0])
		os.Exit(1)
	}

	sourceBytes, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}
	source := string(sourceBytes)

	if *stepShort || *stepLong {
		if err := runStepper(source); err != nil {
			log.Fatal(err)
		}
		return
	}

	c := compiler.New(source)
	if err := c.Parse(); err != nil {
		log.Fatalf("Error at %v", err)
	}
	if err := c.GenerateFile(asmPath); err != nil {
		log.Fatalf("Error at %v", err)
	}

	if err := toolchain.New().Build(asmPath, exePath); err != nil {
		log.Fatalf("Error: Compilation failed: %v", err)
	}
	fmt.Printf("Compilation successful. Executable '%s' created.\n", exePath)
}
