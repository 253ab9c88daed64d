package types

import (
	"testing"

	"directory-service/utils/consts"

	rndStr "github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
)

func TestEntryHas(t *testing.T) {
	entry := Entry{
		"name":     "shaheed chandu stadium",
		"approved": false,
		"empty":    "",
		"nothing":  nil,
	}
	assert.True(t, entry.Has("name"))
	assert.True(t, entry.Has("approved"))
	assert.False(t, entry.Has("empty"))
	assert.False(t, entry.Has("nothing"))
	assert.False(t, entry.Has("absent"))
}

func TestEntryMissingFields(t *testing.T) {
	entry := Entry{"name": "sub fire station", "address": ""}
	missing := entry.MissingFields([]string{"name", "address", "officer"})
	assert.Equal(t, []string{"address", "officer"}, missing)

	assert.Nil(t, entry.MissingFields(nil))
	assert.Nil(t, Entry{"name": "x"}.MissingFields([]string{"name"}))
}

func TestEntryStripID(t *testing.T) {
	entry := Entry{consts.IdField: "client-supplied", "name": "x"}
	entry.StripID()
	assert.NotContains(t, entry, consts.IdField)
	assert.Contains(t, entry, "name")
}

func TestNewPagedResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		limit          int64
		wantTotalPages int64
	}{
		{name: "exact pages", total: 30, limit: 10, wantTotalPages: 3},
		{name: "partial last page", total: 25, limit: 10, wantTotalPages: 3},
		{name: "single short page", total: 4, limit: 10, wantTotalPages: 1},
		{name: "empty collection", total: 0, limit: 10, wantTotalPages: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPagedResult(tt.total, 1, tt.limit, []Entry{})
			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.wantTotalPages, result.TotalPages)
			assert.NotNil(t, result.Reports)
		})
	}
}

func TestNewComment(t *testing.T) {
	author, text := rndStr.New(), rndStr.New()
	first := NewComment(author, text)
	second := NewComment(author, text)

	assert.Equal(t, author, first.Author)
	assert.Equal(t, text, first.Text)
	assert.False(t, first.CreatedAt.IsZero())
	assert.NotEqual(t, first.ID, second.ID)
}
