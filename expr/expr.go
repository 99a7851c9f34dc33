package expr

import (
	"strconv"
	"strings"

	"github.com/embedlab/vecquery/store"
)

// Op identifies a binary vector operator.
type Op int

const (
	// Add sums operands component-wise.
	Add Op = iota
	// Sub subtracts the right operand from the left, component-wise.
	Sub
)

func (o Op) String() string {
	if o == Sub {
		return "-"
	}
	return "+"
}

// Node is a parsed vector expression. Implementations are Literal, Term,
// Binary and Neg.
type Node interface {
	// String renders a canonical textual form that parses back to an
	// equivalent expression.
	String() string

	eval(s *store.Store) ([]float32, error)
}

// Literal is a raw numeric vector embedded in an expression.
type Literal []float32

// Term is a word resolved against the store vocabulary at evaluation time.
type Term string

// Binary combines two sub-expressions with Add or Sub.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

// Neg flips the sign of every component of its operand.
type Neg struct {
	X Node
}

// Evaluate folds the expression into a single vector using post-order
// traversal. Named terms resolve through the store, propagating
// *store.UnknownWordError; literals of the wrong length fail with
// *store.DimensionMismatchError before any combination happens.
func Evaluate(n Node, s *store.Store) ([]float32, error) {
	return n.eval(s)
}

func (l Literal) eval(s *store.Store) ([]float32, error) {
	if len(l) != s.Dimension() {
		return nil, &store.DimensionMismatchError{Want: s.Dimension(), Got: len(l)}
	}
	return append([]float32(nil), l...), nil
}

func (t Term) eval(s *store.Store) ([]float32, error) {
	return s.Vector(string(t))
}

func (b Binary) eval(s *store.Store) ([]float32, error) {
	left, err := b.Left.eval(s)
	if err != nil {
		return nil, err
	}
	right, err := b.Right.eval(s)
	if err != nil {
		return nil, err
	}
	if b.Op == Sub {
		for i := range left {
			left[i] -= right[i]
		}
		return left, nil
	}
	for i := range left {
		left[i] += right[i]
	}
	return left, nil
}

func (n Neg) eval(s *store.Store) ([]float32, error) {
	v, err := n.X.eval(s)
	if err != nil {
		return nil, err
	}
	for i := range v {
		v[i] = -v[i]
	}
	return v, nil
}

func (l Literal) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (t Term) String() string {
	if isBareWord(string(t)) {
		return string(t)
	}
	return strconv.Quote(string(t))
}

func (b Binary) String() string {
	return b.Left.String() + " " + b.Op.String() + " " + operand(b.Right)
}

func (n Neg) String() string {
	return "-" + operand(n.X)
}

// operand parenthesizes compound sub-expressions so the rendered form parses
// back with the same shape.
func operand(n Node) string {
	switch n.(type) {
	case Binary, Neg:
		return "(" + n.String() + ")"
	}
	return n.String()
}
