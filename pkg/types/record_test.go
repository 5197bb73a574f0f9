package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Str(t *testing.T) {
	rec := Record{"name": "Olena", "count": float64(3), "flag": true}

	assert.Equal(t, "Olena", rec.Str("name"))
	assert.Equal(t, "", rec.Str("count"), "non-string yields empty")
	assert.Equal(t, "", rec.Str("missing"))
}

func TestRecord_Strs(t *testing.T) {
	rec := Record{
		"tags":  []any{"a", "b", float64(1), "c"},
		"name":  "Olena",
		"empty": []any{},
	}

	assert.Equal(t, []string{"a", "b", "c"}, rec.Strs("tags"))
	assert.Nil(t, rec.Strs("name"), "non-array yields nil")
	assert.Nil(t, rec.Strs("missing"))
	assert.Empty(t, rec.Strs("empty"))
}
