package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bawdo/relast/relerr"
	"github.com/bawdo/relast/schema"
)

func TestCaseSensitiveLookup(t *testing.T) {
	s := schema.New(map[string]string{"id": "int", "name": "text"})

	require.Equal(t, "id", s.Lookup("users", "id"))
	require.Panics(t, func() { s.Lookup("users", "ID") })
}

func TestCaseInsensitiveLookupCanonicalizes(t *testing.T) {
	s := schema.NewCaseInsensitive(map[string]string{"Id": "int", "Comment": "text"})

	require.Equal(t, "Id", s.Lookup("a", "id"))
	require.Equal(t, "Comment", s.Lookup("a", "COMMENT"))
}

func TestLookupPanicsWithSchemaMiss(t *testing.T) {
	s := schema.New(map[string]string{"id": "int"})

	require.PanicsWithValue(t, &relerr.SchemaMiss{Table: "a", Column: "missing"}, func() {
		s.Lookup("a", "missing")
	})
}

func TestTryLookupNeverPanics(t *testing.T) {
	s := schema.NewCaseInsensitive(map[string]string{"Id": "int"})

	canon, ok := s.TryLookup("ID")
	require.True(t, ok)
	require.Equal(t, "Id", canon)

	_, ok = s.TryLookup("nope")
	require.False(t, ok)
}

func TestTypeReturnsDeclaredType(t *testing.T) {
	s := schema.New(map[string]string{"id": "int"})
	require.Equal(t, "int", s.Type("id"))
	require.Equal(t, "", s.Type("missing"))
}

func TestNilSchemaIsPermissive(t *testing.T) {
	var s *schema.Schema
	require.Equal(t, "x", s.Lookup("a", "x"))
	_, ok := s.TryLookup("x")
	require.False(t, ok)
	require.Equal(t, "", s.Type("x"))
}
