// Package toolchain drives the external assembler and linker that turn the
// generated assembly text into a runnable executable. The compiler's only
// contract with these tools is producing syntactically valid input for them;
// beyond pass/fail their result is not inspected.
package toolchain

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Toolchain names the external tools to invoke. The assembler must accept
// nasm-style arguments (-f elf64) and the linker ld-style ones.
type Toolchain struct {
	Assembler string
	Linker    string
}

// New returns the default nasm/ld pair.
func New() Toolchain {
	return Toolchain{Assembler: "nasm", Linker: "ld"}
}

// ObjectPath derives the object file path from an assembly file path by
// swapping the extension for .o.
func ObjectPath(asmPath string) string {
	ext := filepath.Ext(asmPath)
	if ext == "" {
		return asmPath + ".o"
	}
	return strings.TrimSuffix(asmPath, ext) + ".o"
}

// Build assembles asmPath into an object file and links it into outPath.
// The executable is freestanding: a raw _start entry point, no C runtime.
func (t Toolchain) Build(asmPath, outPath string) error {
	objPath := ObjectPath(asmPath)

	if out, err := exec.Command(t.Assembler, "-f", "elf64", asmPath, "-o", objPath).CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %v\n%s", t.Assembler, err, out)
	}
	if out, err := exec.Command(t.Linker, "-o", outPath, objPath).CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %v\n%s", t.Linker, err, out)
	}
	return nil
}
