package schema

import "time"

// Argument extraction helpers. graphql-go coerces Int args to int,
// Float to float64 and DateTime to time.Time before resolvers run.

func strArg(args map[string]interface{}, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]interface{}, name string) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return false
}

func intPtrArg(args map[string]interface{}, name string) *int {
	if v, ok := args[name].(int); ok {
		return &v
	}
	return nil
}

func uintPtrArg(args map[string]interface{}, name string) *uint {
	if v, ok := args[name].(int); ok && v >= 0 {
		u := uint(v)
		return &u
	}
	return nil
}

func floatPtrArg(args map[string]interface{}, name string) *float64 {
	switch v := args[name].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func timePtrArg(args map[string]interface{}, name string) *time.Time {
	if v, ok := args[name].(time.Time); ok {
		return &v
	}
	return nil
}

func uintSliceArg(args map[string]interface{}, name string) []uint {
	raw, ok := args[name].([]interface{})
	if !ok {
		return nil
	}
	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		if v, ok := item.(int); ok && v >= 0 {
			ids = append(ids, uint(v))
		}
	}
	return ids
}
