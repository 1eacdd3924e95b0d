package syntax

// Category is the styling class of a tagged span.
//
// Categories are declared in rendering precedence order: when two tags
// overlap, the one with the larger Category is drawn.
type Category uint8

const (
	KeywordDeclaration Category = iota
	KeywordLiteral
	KeywordControlFlow
	KeywordBuiltin
	Decorator
	IntegerLiteral
	StringLiteral
)

// Categories lists every category in precedence order.
func Categories() []Category {
	return []Category{
		KeywordDeclaration,
		KeywordLiteral,
		KeywordControlFlow,
		KeywordBuiltin,
		Decorator,
		IntegerLiteral,
		StringLiteral,
	}
}

func (c Category) String() string {
	switch c {
	case KeywordDeclaration:
		return "declaration"
	case KeywordLiteral:
		return "literal"
	case KeywordControlFlow:
		return "control_flow"
	case KeywordBuiltin:
		return "builtin"
	case Decorator:
		return "decorator"
	case IntegerLiteral:
		return "integer"
	case StringLiteral:
		return "string"
	default:
		return "unknown"
	}
}

// Tag is a styled span of one line, half-open in grapheme columns.
type Tag struct {
	StartCol int
	EndCol   int
	Category Category
}
