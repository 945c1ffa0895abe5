package libdiff

// Reverse returns the changes turning the to value of cs back into its
// from value.  Inserts and deletes swap, replaces swap their values, and
// the order is reversed so that pointers stay valid.
func Reverse(cs Changes) Changes {
	res := make(Changes, len(cs))
	for i := range cs {
		c := cs[i]
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		}
		c.From, c.To = c.To, c.From
		if len(c.Edits) != 0 {
			edits := make([]Edit, len(c.Edits))
			for j, e := range c.Edits {
				switch e.Op {
				case Insert:
					e.Op = Delete
				case Delete:
					e.Op = Insert
				}
				edits[j] = e
			}
			c.Edits = edits
		}
		res[len(cs)-1-i] = c
	}
	return res
}
