package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opNot operator = "not"
	opEq  operator = "eq"
	opNeq operator = "neq"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var binaryOperators = map[TokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkEqualEqual:   opEq,
	tkBangEqual:    opNeq,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

var unaryOperators = map[TokenType]operator{
	tkMinus: opNeg,
	tkBang:  opNot,
}

var numberOperations = map[operator]func(x, y float64) interface{}{
	opAdd: func(x, y float64) interface{} { return x + y },
	opSub: func(x, y float64) interface{} { return x - y },
	opMul: func(x, y float64) interface{} { return x * y },
	opDiv: func(x, y float64) interface{} { return x / y },
	opEq:  func(x, y float64) interface{} { return x == y },
	opNeq: func(x, y float64) interface{} { return x != y },
	opLt:  func(x, y float64) interface{} { return x < y },
	opLte: func(x, y float64) interface{} { return x <= y },
	opGt:  func(x, y float64) interface{} { return x > y },
	opGte: func(x, y float64) interface{} { return x >= y },
}

var stringOperations = map[operator]func(x, y string) interface{}{
	opAdd: func(x, y string) interface{} { return x + y },
	opEq:  func(x, y string) interface{} { return x == y },
	opNeq: func(x, y string) interface{} { return x != y },
	opLt:  func(x, y string) interface{} { return x < y },
	opLte: func(x, y string) interface{} { return x <= y },
	opGt:  func(x, y string) interface{} { return x > y },
	opGte: func(x, y string) interface{} { return x >= y },
}

var boolOperations = map[operator]func(x, y bool) interface{}{
	opEq:  func(x, y bool) interface{} { return x == y },
	opNeq: func(x, y bool) interface{} { return x != y },
}

func isEquality(op operator) bool {
	return op == opEq || op == opNeq
}

// mismatch picks the message for operands of the wrong types
func mismatch(op operator) (interface{}, ErrorKind, error) {
	switch op {
	case opAdd, opLt, opLte, opGt, opGte:
		return nil, KindTypeMismatch, errOperandsNumbersOrStrings
	case opEq, opNeq:
		return nil, KindTypeMismatch, errOperandsSameType
	}
	return nil, KindTypeMismatch, errOperandsNumbers
}

// applyBinary never coerces: both operands must carry the same tag and the
// tag must support op.
func applyBinary(op operator, left, right interface{}) (interface{}, ErrorKind, error) {
	if left == nil || right == nil {
		if left == nil && right == nil && isEquality(op) {
			return op == opEq, 0, nil
		}
		return nil, KindUnexpectedNil, errUnexpectedNil
	}

	switch x := left.(type) {
	case float64:
		y, ok := right.(float64)
		if !ok {
			return mismatch(op)
		}
		return numberOperations[op](x, y), 0, nil
	case string:
		y, ok := right.(string)
		if !ok {
			return mismatch(op)
		}
		apply, ok := stringOperations[op]
		if !ok {
			return mismatch(op)
		}
		return apply(x, y), 0, nil
	case bool:
		y, ok := right.(bool)
		if !ok {
			return mismatch(op)
		}
		apply, ok := boolOperations[op]
		if !ok {
			return mismatch(op)
		}
		return apply(x, y), 0, nil
	case callable:
		if _, ok := right.(callable); ok && isEquality(op) {
			return (left == right) == (op == opEq), 0, nil
		}
	case *instance:
		if _, ok := right.(*instance); ok && isEquality(op) {
			return (left == right) == (op == opEq), 0, nil
		}
	}
	return mismatch(op)
}

func applyUnary(op operator, value interface{}) (interface{}, ErrorKind, error) {
	if value == nil {
		return nil, KindUnexpectedNil, errUnexpectedNil
	}
	switch op {
	case opNeg:
		if n, ok := value.(float64); ok {
			return -n, 0, nil
		}
		return nil, KindTypeMismatch, errOnlyNumbers
	default:
		if b, ok := value.(bool); ok {
			return !b, 0, nil
		}
		return nil, KindTypeMismatch, errOnlyBools
	}
}
