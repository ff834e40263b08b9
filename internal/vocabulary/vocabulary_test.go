package vocabulary

import (
	"testing"

	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_CaseInsensitive(t *testing.T) {
	v := New()

	tests := []struct {
		surface string
		want    string
	}{
		{"python", "Python"},
		{"PYTHON", "Python"},
		{"k8s", "Kubernetes"},
		{"golang", "Go"},
		{"node", "Node.js"},
		{"amazon web services", "AWS"},
		{"reactjs", "React"},
	}

	for _, tt := range tests {
		got, ok := v.Canonicalize(tt.surface)
		require.True(t, ok, "expected %q to resolve", tt.surface)
		assert.Equal(t, tt.want, got)
	}
}

func TestCanonicalize_UnknownReturnsFalse(t *testing.T) {
	v := New()

	_, ok := v.Canonicalize("underwater basket weaving")
	assert.False(t, ok)

	_, ok = v.Canonicalize("")
	assert.False(t, ok)
}

func TestCategoryOf(t *testing.T) {
	v := New()

	assert.Equal(t, types.CategoryTechnical, v.CategoryOf("Python"))
	assert.Equal(t, types.CategorySoft, v.CategoryOf("Leadership"))
	assert.Equal(t, types.CategoryTools, v.CategoryOf("Jira"))
	assert.Equal(t, types.CategoryCertifications, v.CategoryOf("PMP"))
	assert.Equal(t, types.CategoryUnknown, v.CategoryOf("Telekinesis"))

	// Case-insensitive like Canonicalize.
	assert.Equal(t, types.CategoryTechnical, v.CategoryOf("python"))
}

func TestBuiltinCatalog_NoCollisions(t *testing.T) {
	v := New()
	assert.Empty(t, v.Collisions(), "builtin catalog must not have ambiguous variations")
}

func TestFromEntries_CollisionFirstWins(t *testing.T) {
	entries := []SkillEntry{
		{Name: "Go", Category: types.CategoryTechnical, Variations: []string{"golang"}},
		{Name: "Golang Tooling", Category: types.CategoryTools, Variations: []string{"golang"}},
	}

	v := FromEntries(entries, nil)

	got, ok := v.Canonicalize("golang")
	require.True(t, ok)
	assert.Equal(t, "Go", got, "first registration must win")

	collisions := v.Collisions()
	require.Len(t, collisions, 1)
	assert.Equal(t, "Go", collisions[0].Kept)
	assert.Equal(t, "Golang Tooling", collisions[0].Rejected)
}

func TestResolveAcronym(t *testing.T) {
	v := New()

	got, ok := v.ResolveAcronym("ML")
	require.True(t, ok)
	assert.Equal(t, "Machine Learning", got)

	got, ok = v.ResolveAcronym("k8s")
	require.True(t, ok)
	assert.Equal(t, "Kubernetes", got)

	_, ok = v.ResolveAcronym("XYZ")
	assert.False(t, ok)
}

func TestFromEntries_AcronymToUnknownSkillSkipped(t *testing.T) {
	entries := []SkillEntry{{Name: "Go", Category: types.CategoryTechnical}}
	v := FromEntries(entries, map[string]string{"ML": "Machine Learning"})

	_, ok := v.ResolveAcronym("ML")
	assert.False(t, ok)
}

func TestCanonicalNames_SortedAndUnique(t *testing.T) {
	v := New()
	names := v.CanonicalNames()
	require.NotEmpty(t, names)

	seen := make(map[string]bool, len(names))
	for i, name := range names {
		assert.False(t, seen[name], "duplicate canonical name %q", name)
		seen[name] = true
		if i > 0 {
			assert.LessOrEqual(t, names[i-1], name)
		}
	}
}
