package kvstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func sameID(a, b rec) bool { return a.ID == b.ID }

func TestLoadAbsentAndCorrupt(t *testing.T) {
	kv := Memory()
	require.Nil(t, Load[rec](kv, "things"))

	kv.Put("things", "not json at all")
	require.Nil(t, Load[rec](kv, "things"))
}

func TestSaveRoundTrip(t *testing.T) {
	kv := Memory()
	Save(kv, "things", []rec{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}})
	got := Load[rec](kv, "things")
	require.Equal(t, []rec{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}, got)
}

func TestUpsertKeepsPosition(t *testing.T) {
	kv := Memory()
	Save(kv, "things", []rec{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	Upsert(kv, "things", rec{ID: "2", Name: "replaced"}, sameID)
	got := Load[rec](kv, "things")
	require.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	require.Equal(t, "replaced", got[1].Name)

	Upsert(kv, "things", rec{ID: "4"}, sameID)
	got = Load[rec](kv, "things")
	require.Len(t, got, 4)
	require.Equal(t, "4", got[3].ID)
}

func TestPrependIsNewestFirst(t *testing.T) {
	kv := Memory()
	Prepend(kv, "things", rec{ID: "1"})
	Prepend(kv, "things", rec{ID: "2"})
	got := Load[rec](kv, "things")
	require.Equal(t, "2", got[0].ID)
	require.Equal(t, "1", got[1].ID)
}

func TestRemoveIf(t *testing.T) {
	kv := Memory()
	Save(kv, "things", []rec{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	RemoveIf(kv, "things", func(r rec) bool { return r.ID == "2" })
	got := Load[rec](kv, "things")
	require.Equal(t, []string{"1", "3"}, []string{got[0].ID, got[1].ID})
}

func TestToggleTwiceRestores(t *testing.T) {
	kv := Memory()
	Toggle(kv, "wish", "a")
	Toggle(kv, "wish", "b")
	require.Equal(t, []string{"a", "b"}, Load[string](kv, "wish"))

	Toggle(kv, "wish", "a")
	Toggle(kv, "wish", "a")
	require.Equal(t, []string{"b", "a"}, Load[string](kv, "wish"))
}

func TestMemoryDelete(t *testing.T) {
	kv := Memory()
	kv.Put("k", "v")
	v, ok := kv.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)

	kv.Delete("k")
	_, ok = kv.Get("k")
	require.False(t, ok)
}
