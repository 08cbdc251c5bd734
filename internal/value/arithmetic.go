package value

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/rhea-language/rhea-sub001/internal/rheaerr"
	"github.com/rhea-language/rhea-sub001/internal/token"
)

// Binary implements the polymorphic binary operators of spec.md §3.2,
// grounded on the original's DynamicObject::operator+/-/*// family
// (original_source/include/n8/core/DynamicObject.hpp) and its dotted
// broadcast variants (original_source/src/n8/core/DynamicObject.cpp).
// Errors are returned rather than panicked so the evaluator can turn
// them into Throw signals without unwinding the Go call stack.
func Binary(op string, left, right Value, pos token.Position) (Value, *rheaerr.Error) {
	switch op {
	case "==":
		return Bool(Equal(left, right)), nil
	case "!=":
		return Bool(!Equal(left, right)), nil
	case "?":
		if _, isNil := left.(nilValue); isNil {
			return right, nil
		}
		return left, nil
	}

	if ln, lok := left.(Number); lok {
		if rn, rok := right.(Number); rok {
			return numberBinary(op, ln, rn, pos)
		}
	}

	if isBroadcast(op) {
		return broadcast(op, left, right, pos)
	}

	if la, lok := left.(*Array); lok {
		if ra, rok := right.(*Array); rok {
			return arrayBinary(op, la, ra, pos)
		}
	}

	switch op {
	case "<", ">", "<=", ">=":
		return compare(op, left, right, pos)
	}

	if ls, lok := left.(String); lok {
		switch rv := right.(type) {
		case String:
			return stringBinary(op, ls, rv, pos)
		default:
			if op == "+" {
				return String(string(ls) + ToDisplayString(right)), nil
			}
		}
	}

	if op == "+" {
		return String(ToDisplayString(left) + ToDisplayString(right)), nil
	}

	if rg, lok := left.(*Regex); lok {
		if s, rok := right.(String); rok {
			switch op {
			case "::", "!:":
				matched, err := rg.MatchString(string(s))
				if err != nil {
					return nil, rheaerr.New(rheaerr.System, pos, "invalid regular expression: "+err.Error())
				}
				if op == "!:" {
					matched = !matched
				}
				return Bool(matched), nil
			}
		}
	}

	return nil, rheaerr.New(rheaerr.System, pos,
		fmt.Sprintf("operator %q not defined for %s and %s", op, left.Type(), right.Type()))
}

func numberBinary(op string, l, r Number, pos token.Position) (Value, *rheaerr.Error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		// Division by zero yields IEEE-754 Inf/NaN, not an error
		// (spec.md §4.6); float64 division already has that behavior.
		return l / r, nil
	case "\\":
		return r / l, nil
	case "%":
		return Number(math.Mod(float64(l), float64(r))), nil
	case "&":
		return Number(int64(l) & int64(r)), nil
	case "|":
		return Number(int64(l) | int64(r)), nil
	case "^":
		return Number(int64(l) ^ int64(r)), nil
	case "<<":
		return Number(int64(l) << uint64(int64(r))), nil
	case ">>":
		return Number(int64(l) >> uint64(int64(r))), nil
	case "<":
		return Bool(l < r), nil
	case ">":
		return Bool(l > r), nil
	case "<=":
		return Bool(l <= r), nil
	case ">=":
		return Bool(l >= r), nil
	}
	return nil, rheaerr.New(rheaerr.System, pos, fmt.Sprintf("operator %q not defined for number and number", op))
}

func compare(op string, left, right Value, pos token.Position) (Value, *rheaerr.Error) {
	ls, lok := left.(String)
	rs, rok := right.(String)
	if !lok || !rok {
		return nil, rheaerr.New(rheaerr.System, pos,
			fmt.Sprintf("operator %q not defined for %s and %s", op, left.Type(), right.Type()))
	}
	// Ordering compares NFC-normalized forms so combining-character
	// and precomposed spellings of the same text sort identically.
	l, r := norm.NFC.String(string(ls)), norm.NFC.String(string(rs))
	switch op {
	case "<":
		return Bool(l < r), nil
	case ">":
		return Bool(l > r), nil
	case "<=":
		return Bool(l <= r), nil
	case ">=":
		return Bool(l >= r), nil
	}
	return nil, rheaerr.New(rheaerr.System, pos, fmt.Sprintf("operator %q not defined for string and string", op))
}

func stringBinary(op string, l, r String, pos token.Position) (Value, *rheaerr.Error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		re := NewRegex(string(r))
		out, err := re.ReplaceAll(string(l), "")
		if err != nil {
			return nil, rheaerr.New(rheaerr.System, pos, "invalid regular expression: "+err.Error())
		}
		return String(out), nil
	case "<", ">", "<=", ">=":
		return compare(op, l, r, pos)
	}
	return nil, rheaerr.New(rheaerr.System, pos, fmt.Sprintf("operator %q not defined for string and string", op))
}

// isBroadcast reports whether op is one of the dotted scalar/array
// broadcast operators (spec.md §6.3: `.+ .- .* ./ .% .| .& .^ .<< .>>`).
func isBroadcast(op string) bool {
	return strings.HasPrefix(op, ".") && len(op) > 1
}

func broadcast(op string, left, right Value, pos token.Position) (Value, *rheaerr.Error) {
	base := strings.TrimPrefix(op, ".")
	arr, scalar, scalarOnLeft := (*Array)(nil), Number(0), false
	switch lv := left.(type) {
	case *Array:
		arr = lv
		sn, ok := right.(Number)
		if !ok {
			return nil, rheaerr.New(rheaerr.System, pos, "broadcast operator requires an array and a number")
		}
		scalar = sn
		scalarOnLeft = false
	default:
		ln, ok := left.(Number)
		if !ok {
			return nil, rheaerr.New(rheaerr.System, pos, "broadcast operator requires an array and a number")
		}
		ra, ok := right.(*Array)
		if !ok {
			return nil, rheaerr.New(rheaerr.System, pos, "broadcast operator requires an array and a number")
		}
		arr, scalar, scalarOnLeft = ra, ln, true
	}

	out := make([]Value, len(arr.Items))
	for i, item := range arr.Items {
		n, ok := item.(Number)
		if !ok {
			return nil, rheaerr.New(rheaerr.System, pos, "broadcast operator requires a numeric array")
		}
		var v Value
		var err *rheaerr.Error
		if scalarOnLeft {
			v, err = numberBinary(base, scalar, n, pos)
		} else {
			v, err = numberBinary(base, n, scalar, pos)
		}
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewArray(out), nil
}

// arrayOperators are the component-wise operators spec.md §3.2 defines
// for same-length numeric Array⊕Array pairs: the arithmetic and bitwise
// operators numberBinary implements (not its comparisons), applied
// element-by-element.
var arrayOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "\\": true,
	"%": true, "&": true, "|": true, "^": true, "<<": true, ">>": true,
}

func arrayBinary(op string, l, r *Array, pos token.Position) (Value, *rheaerr.Error) {
	if !arrayOperators[op] {
		return nil, rheaerr.New(rheaerr.System, pos, fmt.Sprintf("operator %q not defined for array and array", op))
	}
	if len(l.Items) != len(r.Items) {
		return nil, rheaerr.New(rheaerr.System, pos, "array operands must be the same length")
	}
	out := make([]Value, len(l.Items))
	for i := range l.Items {
		ln, lok := l.Items[i].(Number)
		rn, rok := r.Items[i].(Number)
		if !lok || !rok {
			return nil, rheaerr.New(rheaerr.System, pos, "array operands must be purely numeric")
		}
		v, err := numberBinary(op, ln, rn, pos)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewArray(out), nil
}

// Unary implements the prefix operators of spec.md §3.2: `+ - ! ~ *`.
func Unary(op string, operand Value, pos token.Position) (Value, *rheaerr.Error) {
	switch op {
	case "+":
		if n, ok := operand.(Number); ok {
			return n, nil
		}
	case "-":
		if n, ok := operand.(Number); ok {
			return -n, nil
		}
	case "!":
		return Bool(!Truthy(operand)), nil
	case "~":
		switch t := operand.(type) {
		case Number:
			// Bitwise NOT through int64, per the original's
			// UnaryExpression::visit (original_source/src/n8/ast/expression/UnaryExpression.cpp).
			return Number(^int64(t)), nil
		case *Array:
			return t.Reverse(), nil
		case String:
			runes := []rune(string(t))
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return String(runes), nil
		}
	case "*":
		if n, ok := operand.(Number); ok {
			return Number(math.Round(float64(n))), nil
		}
	}
	return nil, rheaerr.New(rheaerr.System, pos, fmt.Sprintf("operator %q not defined for %s", op, operand.Type()))
}
