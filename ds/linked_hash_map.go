package ds

import (
	"bytes"
	"container/list"
	"encoding/json"
)

// LinkedHashMap is a map that remembers insertion order for key listing and
// JSON serialization. The XTV catalog depends on declaration order (channel
// byte offsets within a time-record follow it), so a plain Go map does not
// fit.
type LinkedHashMap[K comparable, V any] struct {
	values   map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		values:   map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.values)
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		keys = append(keys, runner.Value.(K))
	}
	return keys
}

func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.values[key]; !existed {
		r.ordering.PushBack(key)
	}
	r.values[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.values[key]
	return value, ok
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteRune('{')
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		keyBs, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		if len(keyBs) == 0 || keyBs[0] != '"' {
			// numeric keys still need quoting to stay a valid JSON object key
			quoted := make([]byte, 0, len(keyBs)+2)
			quoted = append(quoted, '"')
			quoted = append(quoted, keyBs...)
			quoted = append(quoted, '"')
			keyBs = quoted
		}
		buf.Write(keyBs)
		buf.WriteRune(':')
		valueBs, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)
		if runner.Next() != nil {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')
	return buf.Bytes(), nil
}
