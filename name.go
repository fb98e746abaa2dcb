package symcore

// Name is a symbolic identifier: a base string plus optional subscript
// and superscript, per spec.md §3. Names are totally ordered
// lexicographically by (base, subscript, superscript).
type Name struct {
	Base       string
	Subscript  string
	Superscript string
}

// NewName builds a plain Name with no sub/superscript.
func NewName(base string) Name { return Name{Base: base} }

func (n Name) Equal(o Name) bool {
	return n.Base == o.Base && n.Subscript == o.Subscript && n.Superscript == o.Superscript
}

// Less implements the total lexicographic order of spec.md §3.
func (n Name) Less(o Name) bool {
	if n.Base != o.Base {
		return n.Base < o.Base
	}
	if n.Subscript != o.Subscript {
		return n.Subscript < o.Subscript
	}
	return n.Superscript < o.Superscript
}

func (n Name) String() string {
	s := n.Base
	if n.Subscript != "" {
		s += "_" + n.Subscript
	}
	if n.Superscript != "" {
		s += "^" + n.Superscript
	}
	return s
}

// reservedPrefix is forbidden for user-supplied symbol names; it is
// used internally by SymbolMap for temporaries introduced during
// rational normalization (spec.md §4.6, §2 item "Symbol map").
const reservedPrefix = "__symcore_tmp_"
