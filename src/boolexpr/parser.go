package boolexpr

import (
	"strings"
)

// The grammar is ambiguous on purpose: several rules can match the same
// stretch of text. Ambiguity is resolved by trying rule categories in a
// fixed order on every span, and inside the binary rules by trying
// candidate operator positions from the right end of the span leftward.
// The first split whose two halves both parse wins. There is no
// precedence table; this search order is the whole story, and changing
// it changes which tree a formula like "a->b->c" produces.
type parser struct {
	stmt     string
	registry *Registry
}

// parse resolves the inclusive span [l, r] of p.stmt. It reports
// failure with ok=false rather than an error: rule attempts fail
// constantly during the split search and only the top-level caller
// turns a failed parse into something user-visible.
func (p *parser) parse(l, r int) (Expression, bool) {
	if l > r {
		return nil, false
	}

	if expr, ok := p.parseParen(l, r); ok {
		return expr, true
	}
	if expr, ok := p.parseTerminal(l, r); ok {
		return expr, true
	}
	for _, op := range []Op{Iff, Implies, Or, And} {
		if expr, ok := p.parseBinary(l, r, op); ok {
			return expr, true
		}
	}
	if expr, ok := p.parseNegation(l, r); ok {
		return expr, true
	}
	return nil, false
}

// parseParen matches '(' Expr ')'. When the interior does not parse the
// rule fails, and the remaining rules get their shot at the same span,
// which is how "(a)|(b)" ends up at the disjunction rule.
func (p *parser) parseParen(l, r int) (Expression, bool) {
	if p.stmt[l] != '(' || p.stmt[r] != ')' {
		return nil, false
	}
	return p.parse(l+1, r-1)
}

// parseTerminal matches a single-character span: a lowercase variable,
// or the constants T and F. Variables are interned in the registry as
// they are first seen.
func (p *parser) parseTerminal(l, r int) (Expression, bool) {
	if l != r {
		return nil, false
	}

	switch c := p.stmt[l]; {
	case c >= 'a' && c <= 'z':
		name := string(c)
		p.registry.Intern(name)
		return &Literal{Name: name}, true
	case c == 'T':
		return &Constant{Value: true}, true
	case c == 'F':
		return &Constant{Value: false}, true
	default:
		return nil, false
	}
}

// parseBinary matches Expr op Expr. Candidate operator occurrences are
// tried rightmost-first; each retry narrows the search window to end
// just before the previous hit. The first occurrence whose two sides
// both parse produces the node.
func (p *parser) parseBinary(l, r int, op Op) (Expression, bool) {
	token := op.token()

	i := lastOccurrenceWithin(p.stmt, token, l, r+1)
	for i != -1 {
		if left, ok := p.parse(l, i-1); ok {
			if right, ok := p.parse(i+len(token), r); ok {
				return &Binary{Op: op, Left: left, Right: right}, true
			}
		}
		i = lastOccurrenceWithin(p.stmt, token, l, i-1)
	}
	return nil, false
}

// parseNegation matches '~' Expr.
func (p *parser) parseNegation(l, r int) (Expression, bool) {
	if p.stmt[l] != '~' {
		return nil, false
	}

	operand, ok := p.parse(l+1, r)
	if !ok {
		return nil, false
	}
	return &Negation{Operand: operand}, true
}

// lastOccurrenceWithin returns the start index of the rightmost
// occurrence of token lying entirely inside s[start:end], or -1.
func lastOccurrenceWithin(s, token string, start, end int) int {
	if end > len(s) {
		end = len(s)
	}
	if start < 0 || start >= end {
		return -1
	}

	i := strings.LastIndex(s[start:end], token)
	if i == -1 {
		return -1
	}
	return start + i
}
