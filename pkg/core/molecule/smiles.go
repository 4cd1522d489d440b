package molecule

import (
	"fmt"
	"strings"
)

// ParseSMILES parses a SMILES line notation into a molecular graph with
// implicit hydrogen counts. Stereo markers are accepted and ignored;
// wildcard atoms are rejected. The result carries no coordinates.
func ParseSMILES(s string) (*Molecule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &ParseError{Format: FormatSMILES, Detail: "empty notation"}
	}

	p := &smilesParser{
		src:  s,
		mol:  &Molecule{Source: FormatSMILES},
		prev: -1,
		ring: map[string]ringOpen{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}

	if len(p.stack) > 0 {
		return nil, p.errf(len(s), "unbalanced parentheses: %d branch(es) left open", len(p.stack))
	}
	if len(p.ring) > 0 {
		keys := make([]string, 0, len(p.ring))
		for k := range p.ring {
			keys = append(keys, k)
		}
		return nil, p.errf(len(s), "unclosed ring bond(s): %s", strings.Join(keys, ","))
	}
	if len(p.mol.Atoms) == 0 {
		return nil, p.errf(0, "no atoms")
	}

	p.assignImplicitHydrogens()
	return p.mol, nil
}

type ringOpen struct {
	atom  int
	order int
}

type smilesParser struct {
	src   string
	pos   int
	mol   *Molecule
	prev  int
	stack []int
	ring  map[string]ringOpen

	// pending bond written before the next atom or ring closure; 0 means
	// "default" (single, or aromatic between two aromatic atoms).
	pendingOrder    int
	pendingAromatic bool

	bracketed []bool
}

func (p *smilesParser) errf(pos int, format string, args ...any) error {
	return &ParseError{Format: FormatSMILES, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}

func (p *smilesParser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.errf(p.pos, "branch before any atom")
			}
			p.stack = append(p.stack, p.prev)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 {
				return p.errf(p.pos, "unmatched ')'")
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pos++
		case c == '.':
			p.prev = -1
			p.pendingOrder = 0
			p.pendingAromatic = false
			p.pos++
		case c == '-' || c == '=' || c == '#' || c == '$' || c == ':' || c == '/' || c == '\\':
			if p.pendingOrder != 0 || p.pendingAromatic {
				return p.errf(p.pos, "two bond symbols in a row")
			}
			switch c {
			case '=':
				p.pendingOrder = 2
			case '#':
				p.pendingOrder = 3
			case '$':
				p.pendingOrder = 4
			case ':':
				p.pendingAromatic = true
				p.pendingOrder = 1
			default:
				p.pendingOrder = 1
			}
			p.pos++
		case c >= '0' && c <= '9':
			if err := p.closeRing(string(c)); err != nil {
				return err
			}
			p.pos++
		case c == '%':
			if p.pos+2 >= len(p.src) || !isDigit(p.src[p.pos+1]) || !isDigit(p.src[p.pos+2]) {
				return p.errf(p.pos, "'%%' must be followed by two digits")
			}
			if err := p.closeRing(p.src[p.pos+1 : p.pos+3]); err != nil {
				return err
			}
			p.pos += 3
		case c == '[':
			if err := p.readBracketAtom(); err != nil {
				return err
			}
		case c == '*':
			return p.errf(p.pos, "wildcard atom '*' not supported")
		default:
			if err := p.readOrganicAtom(); err != nil {
				return err
			}
		}
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// addAtom appends the atom and bonds it to the previous one.
func (p *smilesParser) addAtom(a *Atom, fromBracket bool) {
	idx := len(p.mol.Atoms)
	p.mol.Atoms = append(p.mol.Atoms, a)
	p.bracketed = append(p.bracketed, fromBracket)

	if p.prev >= 0 {
		p.bondTo(p.prev, idx)
	}
	p.prev = idx
}

func (p *smilesParser) bondTo(a, b int) {
	order := p.pendingOrder
	aromatic := p.pendingAromatic
	if order == 0 {
		order = 1
		if p.mol.Atoms[a].Aromatic && p.mol.Atoms[b].Aromatic {
			aromatic = true
		}
	}
	p.mol.Bonds = append(p.mol.Bonds, &Bond{A: a, B: b, Order: order, Aromatic: aromatic})
	p.pendingOrder = 0
	p.pendingAromatic = false
}

func (p *smilesParser) closeRing(label string) error {
	if p.prev < 0 {
		return p.errf(p.pos, "ring bond before any atom")
	}
	if open, ok := p.ring[label]; ok {
		delete(p.ring, label)
		if open.atom == p.prev {
			return p.errf(p.pos, "ring bond %s closes on its own atom", label)
		}
		// Either side may carry the bond symbol.
		if p.pendingOrder == 0 && open.order != 0 {
			p.pendingOrder = open.order
		}
		p.bondTo(open.atom, p.prev)
		return nil
	}
	p.ring[label] = ringOpen{atom: p.prev, order: p.pendingOrder}
	p.pendingOrder = 0
	p.pendingAromatic = false
	return nil
}

// organic subset: B C N O P S F Cl Br I and aromatic b c n o p s.
func (p *smilesParser) readOrganicAtom() error {
	rest := p.src[p.pos:]
	for _, two := range []string{"Cl", "Br"} {
		if strings.HasPrefix(rest, two) {
			p.addAtom(&Atom{Symbol: two}, false)
			p.pos += 2
			return nil
		}
	}

	c := rest[0]
	switch c {
	case 'B', 'C', 'N', 'O', 'P', 'S', 'F', 'I':
		p.addAtom(&Atom{Symbol: string(c)}, false)
	case 'b', 'c', 'n', 'o', 'p', 's':
		p.addAtom(&Atom{Symbol: strings.ToUpper(string(c)), Aromatic: true}, false)
	default:
		return p.errf(p.pos, "unexpected character %q", string(c))
	}
	p.pos++
	return nil
}

// readBracketAtom parses [isotope? symbol chiral? Hn? charge? :map?].
func (p *smilesParser) readBracketAtom() error {
	start := p.pos
	end := strings.IndexByte(p.src[start:], ']')
	if end < 0 {
		return p.errf(start, "unclosed bracket atom")
	}
	body := p.src[start+1 : start+end]
	p.pos = start + end + 1
	if body == "" {
		return p.errf(start, "empty bracket atom")
	}

	a := &Atom{HKnown: true}
	i := 0

	for i < len(body) && isDigit(body[i]) {
		a.Isotope = a.Isotope*10 + int(body[i]-'0')
		i++
	}

	if i >= len(body) {
		return p.errf(start, "bracket atom %q has no element symbol", body)
	}
	switch {
	case body[i] >= 'A' && body[i] <= 'Z':
		sym := string(body[i])
		i++
		if i < len(body) && body[i] >= 'a' && body[i] <= 'z' && body[i] != 'h' {
			sym += string(body[i])
			i++
		}
		if _, ok := symbolMass[sym]; !ok {
			return p.errf(start, "unknown element %q", sym)
		}
		a.Symbol = sym
	case strings.HasPrefix(body[i:], "se"), strings.HasPrefix(body[i:], "as"):
		a.Symbol = strings.ToUpper(body[i : i+1]) + body[i+1:i+2]
		a.Aromatic = true
		i += 2
	case body[i] == 'b' || body[i] == 'c' || body[i] == 'n' || body[i] == 'o' || body[i] == 'p' || body[i] == 's':
		a.Symbol = strings.ToUpper(string(body[i]))
		a.Aromatic = true
		i++
	default:
		return p.errf(start, "bad element symbol in bracket atom %q", body)
	}

	// chirality ignored
	chiral := false
	for i < len(body) && body[i] == '@' {
		chiral = true
		i++
	}
	if chiral && i < len(body) && (body[i] == 'T' || body[i] == 'A' || body[i] == 'S' || body[i] == 'O') {
		// e.g. @TH1, @AL2, @SP3, @OH6 — skip tag and digits
		for i < len(body) && body[i] != 'H' && body[i] != '+' && body[i] != '-' && body[i] != ':' {
			i++
		}
	}

	if i < len(body) && body[i] == 'H' {
		i++
		a.HCount = 1
		n := 0
		for i < len(body) && isDigit(body[i]) {
			n = n*10 + int(body[i]-'0')
			i++
		}
		if n > 0 {
			a.HCount = n
		}
	}

	if i < len(body) && (body[i] == '+' || body[i] == '-') {
		sign := 1
		if body[i] == '-' {
			sign = -1
		}
		mark := body[i]
		count := 0
		for i < len(body) && body[i] == mark {
			count++
			i++
		}
		if i < len(body) && isDigit(body[i]) {
			if count != 1 {
				return p.errf(start, "bad charge in bracket atom %q", body)
			}
			count = 0
			for i < len(body) && isDigit(body[i]) {
				count = count*10 + int(body[i]-'0')
				i++
			}
		}
		a.Charge = sign * count
	}

	if i < len(body) && body[i] == ':' {
		// atom map label, ignored
		i++
		for i < len(body) && isDigit(body[i]) {
			i++
		}
	}

	if i != len(body) {
		return p.errf(start, "trailing %q in bracket atom", body[i:])
	}

	p.addAtom(a, true)
	return nil
}

// assignImplicitHydrogens fills HCount for organic-subset atoms written
// without brackets, using the smallest default valence that covers the
// explicit bond order sum. An aromatic atom contributes one extra unit
// for its share of the delocalized system.
func (p *smilesParser) assignImplicitHydrogens() {
	adj := p.mol.Adjacency()
	for i, a := range p.mol.Atoms {
		if p.bracketed[i] {
			continue
		}
		sum := 0
		for _, bi := range adj[i] {
			b := p.mol.Bonds[bi]
			if b.Aromatic {
				sum++
			} else {
				sum += b.Order
			}
		}
		if a.Aromatic {
			sum++
		}
		a.HKnown = true
		a.HCount = 0
		for _, v := range organicValence[a.Symbol] {
			if v >= sum {
				a.HCount = v - sum
				break
			}
		}
	}
}
