package updates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSet_SortedAndNumbered(t *testing.T) {
	allowed := map[string]bool{"title": true, "author": true}

	clause, args, err := BuildSet(map[string]any{
		"title":  "Idioms",
		"author": "me",
	}, allowed, 2)
	require.NoError(t, err)

	assert.Equal(t, `"author" = $2, "title" = $3`, clause)
	assert.Equal(t, []any{"me", "Idioms"}, args)
}

func TestBuildSet_RejectsUnlistedColumn(t *testing.T) {
	_, _, err := BuildSet(map[string]any{"owner_id": "evil"}, map[string]bool{"title": true}, 1)
	require.Error(t, err)
}

func TestBuildSet_RejectsEmptyMap(t *testing.T) {
	_, _, err := BuildSet(map[string]any{}, map[string]bool{"title": true}, 1)
	require.Error(t, err)
}

func TestBuildSet_NormalizesStringLists(t *testing.T) {
	allowed := map[string]bool{"synonyms": true}

	// JSON decoding yields []any; binding needs []string
	_, args, err := BuildSet(map[string]any{
		"synonyms": []any{"fleeting", "transient"},
	}, allowed, 1)
	require.NoError(t, err)

	assert.Equal(t, []any{[]string{"fleeting", "transient"}}, args)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"a"}, Normalize([]any{"a"}))
	assert.Equal(t, 42, Normalize(42))
	assert.Equal(t, "s", Normalize("s"))

	// mixed lists pass through untouched
	mixed := []any{"a", 1}
	assert.Equal(t, mixed, Normalize(mixed))
}
