package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	cases := []struct {
		name         string
		page         int
		itemsPerPage int
		totalItems   int64
		wantPages    int
	}{
		{"empty", 1, 100, 0, 0},
		{"one partial page", 1, 100, 1, 1},
		{"exact page boundary", 1, 100, 100, 1},
		{"one over boundary", 1, 100, 101, 2},
		{"small window", 3, 10, 95, 10},
		{"single item window", 1, 1, 7, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMeta(Params{Page: tc.page, ItemsPerPage: tc.itemsPerPage}, tc.totalItems)
			assert.Equal(t, tc.wantPages, m.TotalPages)
			assert.Equal(t, tc.totalItems, m.TotalItems)
			assert.Equal(t, tc.itemsPerPage, m.ItemsPerPage)
			assert.Equal(t, tc.page, m.CurrentPage)
		})
	}
}

func TestNewMetaCeilingProperty(t *testing.T) {
	for perPage := 1; perPage <= MaxItemsPerPage; perPage += 9 {
		for total := int64(0); total <= 250; total += 13 {
			m := NewMeta(Params{Page: 1, ItemsPerPage: perPage}, total)
			want := int((total + int64(perPage) - 1) / int64(perPage))
			assert.Equal(t, want, m.TotalPages, "per_page=%d total=%d", perPage, total)
		}
	}
}

func TestNewMetaDoesNotClampPastLastPage(t *testing.T) {
	m := NewMeta(Params{Page: 50, ItemsPerPage: 100}, 3)
	assert.Equal(t, 50, m.CurrentPage)
	assert.Equal(t, 1, m.TotalPages)
}

func TestParamsWindow(t *testing.T) {
	p := Params{Page: 1, ItemsPerPage: 100}
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 100, p.Limit())

	p = Params{Page: 4, ItemsPerPage: 25}
	assert.Equal(t, 75, p.Offset())
	assert.Equal(t, 25, p.Limit())
}

func TestNewEnvelopeNeverNilItems(t *testing.T) {
	env := NewEnvelope[int](nil, DefaultParams(), 0)
	assert.NotNil(t, env.Items)
	assert.Len(t, env.Items, 0)
	assert.Equal(t, 0, env.Pagination.TotalPages)
}
