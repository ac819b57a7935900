package crypto

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// FromAny converts a decoded Go value into a Value.
//
// Supported types are nil, bool, string, json.Number, the integer and float kinds,
// map[string]any, []any and Value. Anything else is a malformed input error.
// Map members are added in sorted order; the encoder imposes its own order regardless.
func FromAny(v any) (Value, error) {
	return fromAny(v, "$")
}

func fromAny(v any, path string) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return Number(x.String()), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Number(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Number(strconv.FormatUint(x, 10)), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			val, err := fromAny(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			items[i] = val
		}
		return Value{kind: KindArray, items: items}, nil
	case map[string]any:
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)

		members := make([]Member, len(names))
		for i, name := range names {
			val, err := fromAny(x[name], path+"."+name)
			if err != nil {
				return Value{}, err
			}
			members[i] = Member{Name: name, Value: val}
		}
		return Value{kind: KindObject, members: members}, nil
	default:
		return Value{}, NewMalformedInputError(fmt.Sprintf("unsupported value type %T at %s", v, path))
	}
}
