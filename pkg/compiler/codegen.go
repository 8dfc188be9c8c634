package compiler

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// codeGen accumulates assembly source text.
type codeGen struct {
	out strings.Builder
}

func (cg *codeGen) line(format string, args ...any) {
	fmt.Fprintf(&cg.out, format+"\n", args...)
}

// GenerateAsm walks the completed procedure table and emits NASM x86-64
// source text. Procedures appear in first-seen order; each gets a label, a
// fixed frame prologue, one call per entry of its call list, and a fixed
// epilogue. A final _start block calls main and performs the exit syscall.
//
// Calls are emitted by callee name. A callee that was never declared still
// gets its call emitted; the missing label is the external assembler's
// problem, not ours.
func (c *Compiler) GenerateAsm() string {
	cg := &codeGen{}

	cg.line("global _start")
	cg.line("")
	cg.line("section .text")
	cg.line("")

	for _, proc := range c.procs {
		cg.line("%s:", proc.Name)
		cg.line("    push rbp")
		cg.line("    mov rbp, rsp")
		for _, callee := range proc.Calls {
			cg.line("    call %s", callee.Name)
		}
		cg.line("    mov rsp, rbp")
		cg.line("    pop rbp")
		cg.line("    ret")
		cg.line("")
	}

	cg.line("_start:")
	cg.line("    call main")
	cg.line("    mov rax, 60")
	cg.line("    xor rdi, rdi")
	cg.line("    syscall")

	return cg.out.String()
}

// GenerateFile writes the generated assembly to path.
func (c *Compiler) GenerateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &Error{
			Kind:    ResourceError,
			Row:     c.cursor.Row,
			Col:     c.cursor.Col,
			Message: "Could not create output file",
		}
	}
	defer f.Close()

	if _, err := io.WriteString(f, c.GenerateAsm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
