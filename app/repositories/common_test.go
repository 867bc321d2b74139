package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	columns := map[string]string{
		"published_date": "posts.published_date",
		"title":          "posts.title",
		"author_name":    "authors.name",
	}
	fallback := "posts.published_date DESC"

	cases := []struct {
		ordering string
		want     string
	}{
		{"", fallback},
		{"published_date", "posts.published_date ASC"},
		{"-published_date", "posts.published_date DESC"},
		{"title", "posts.title ASC"},
		{"-title", "posts.title DESC"},
		{"author_name", "authors.name ASC"},
		{"-author_name", "authors.name DESC"},
		// Unknown keys must not reach the SQL; they get the fallback.
		{"bogus", fallback},
		{"-bogus", fallback},
		{"id; DROP TABLE posts", fallback},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, orderClause(tc.ordering, columns, fallback), "ordering=%q", tc.ordering)
	}
}
