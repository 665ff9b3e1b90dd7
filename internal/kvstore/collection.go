package kvstore

import "encoding/json"

// Collections are whole-sequence read-modify-write: every helper loads the
// full slice, changes it in memory and writes it back. Unreadable stored
// text loads as empty rather than failing.

func Load[T any](kv KV, key string) []T {
	raw, ok := kv.Get(key)
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

func Save[T any](kv KV, key string, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	kv.Put(key, string(data))
}

// Upsert replaces the first match in place, preserving its position, or
// appends when nothing matches.
func Upsert[T any](kv KV, key string, item T, same func(a, b T) bool) {
	items := Load[T](kv, key)
	for i := range items {
		if same(items[i], item) {
			items[i] = item
			Save(kv, key, items)
			return
		}
	}
	Save(kv, key, append(items, item))
}

// Prepend inserts newest-first; orders and notifications keep that ordering.
func Prepend[T any](kv KV, key string, item T) {
	Save(kv, key, append([]T{item}, Load[T](kv, key)...))
}

func RemoveIf[T any](kv KV, key string, drop func(T) bool) {
	items := Load[T](kv, key)
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	Save(kv, key, kept)
}

// Toggle adds member to the stored ID sequence if absent, else removes it.
// Applying it twice restores the original membership.
func Toggle(kv KV, key, member string) {
	ids := Load[string](kv, key)
	for i, id := range ids {
		if id == member {
			Save(kv, key, append(ids[:i], ids[i+1:]...))
			return
		}
	}
	Save(kv, key, append(ids, member))
}
