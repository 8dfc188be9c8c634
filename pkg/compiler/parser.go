package compiler

// Parse consumes the whole source, populating the procedure table.
//
// Grammar:
//
//	program     = declaration* EOF
//	declaration = IDENTIFIER "::" "proc" "(" ")" "{" call* "}"
//	call        = IDENTIFIER "(" ")"
//
// The first grammar violation aborts the parse with a SyntaxError; there is
// no recovery and no multi-error reporting.
func (c *Compiler) Parse() error {
	if err := c.Lex(); err != nil {
		return err
	}
	for c.current.Type != EOF {
		if err := c.parseDeclaration(); err != nil {
			return err
		}
	}
	return nil
}

// expect consumes the current token if it matches tt, otherwise fails with
// the given message at the offending token.
func (c *Compiler) expect(tt TokenType, message string) error {
	if c.current.Type != tt {
		return syntaxErr(c.current, message)
	}
	return c.Lex()
}

func (c *Compiler) parseDeclaration() error {
	if c.current.Type != IDENTIFIER {
		return syntaxErr(c.current, "Expected procedure name")
	}
	proc := c.findOrCreate(c.current.Lexeme)
	if err := c.Lex(); err != nil {
		return err
	}

	if err := c.expect(DOUBLE_COLON, "Expected '::'"); err != nil {
		return err
	}
	if err := c.expect(PROC, "Expected 'proc'"); err != nil {
		return err
	}
	if err := c.expect(LPAREN, "Expected '('"); err != nil {
		return err
	}
	if err := c.expect(RPAREN, "Expected ')'"); err != nil {
		return err
	}
	if err := c.expect(LBRACE, "Expected '{'"); err != nil {
		return err
	}

	// Redeclaring a name replaces its previous body: last definition wins.
	proc.Calls = proc.Calls[:0]

	for c.current.Type != RBRACE {
		if c.current.Type != IDENTIFIER {
			return syntaxErr(c.current, "Expected procedure call")
		}
		callee := c.findOrCreate(c.current.Lexeme)
		proc.Calls = append(proc.Calls, callee)
		if err := c.Lex(); err != nil {
			return err
		}

		if err := c.expect(LPAREN, "Expected '('"); err != nil {
			return err
		}
		if err := c.expect(RPAREN, "Expected ')'"); err != nil {
			return err
		}
	}

	// Consume the closing '}'.
	return c.Lex()
}
