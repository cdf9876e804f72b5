package internal

import (
	"fmt"
	"math"
	"strconv"
)

// Runtime values are plain Go values: float64, string, bool, nil,
// a callable or an *instance.

// truthy treats only nil and false as false
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}

func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "nil"
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case *class:
		return "class"
	case callable:
		return "function"
	case *instance:
		return "instance"
	}
	return fmt.Sprintf("%T", value)
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "nan"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
