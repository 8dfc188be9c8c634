package compiler

// Procedure is a named unit of the language: its only content is the ordered
// list of procedures it calls. Call list entries point back into the
// compiler's table; the table is the sole owner of every Procedure.
type Procedure struct {
	Name  string
	Calls []*Procedure
}

// find returns the registered procedure with the given name, or nil. The
// table stays small enough that a linear scan is fine.
func (c *Compiler) find(name string) *Procedure {
	for _, p := range c.procs {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// findOrCreate resolves a name to its unique Procedure, registering a
// placeholder with an empty call list when the name has not been seen yet.
// This is what makes forward references work: a call to a not-yet-declared
// procedure creates the entry that a later declaration fills in.
func (c *Compiler) findOrCreate(name string) *Procedure {
	if p := c.find(name); p != nil {
		return p
	}
	p := &Procedure{Name: name}
	c.procs = append(c.procs, p)
	return p
}

// Procedures returns the table in first-seen order. Codegen iterates this
// order, which is what makes the emitted assembly deterministic.
func (c *Compiler) Procedures() []*Procedure {
	return c.procs
}
