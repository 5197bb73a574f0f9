package types

// Record is a single persisted entity as the storage layer sees it: a
// JSON object whose values carry the encoding/json kinds (string,
// float64, bool, nil, nested map or slice). The storage layer never
// interprets record content; entities convert themselves to and from
// records at the service boundary.
type Record map[string]any

// Str returns the string value for key, or "" when the key is absent
// or holds a non-string value.
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Strs returns the value for key as a string slice. JSON arrays decode
// as []any, so each element is converted individually; non-string
// elements are skipped.
func (r Record) Strs(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
