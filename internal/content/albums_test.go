package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitImageLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a.jpg,b.jpg", []string{"a.jpg", "b.jpg"}},
		{"whitespace", "  a.jpg ,  b.jpg  ", []string{"a.jpg", "b.jpg"}},
		{"empty entries", "a.jpg,,, b.jpg,", []string{"a.jpg", "b.jpg"}},
		{"single", "a.jpg", []string{"a.jpg"}},
		{"blank", "   ", []string{}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitImageLinks(tt.in))
		})
	}
}

func TestJoinImageLinks_RoundTrip(t *testing.T) {
	links := []string{"a.jpg", "b.jpg", "c.jpg"}
	assert.Equal(t, links, SplitImageLinks(JoinImageLinks(links)))
}

func TestAlbumCreate_SplitsLinksAndStampsDate(t *testing.T) {
	backend := &fakeBackend{}
	albums := NewAlbumCollection(backend)

	rec, err := albums.Create(context.Background(), AlbumForm{
		Title:      "Sports day",
		CoverImage: "cover.jpg",
		Images:     " one.jpg , two.jpg ,",
	}, "2026")
	require.NoError(t, err)

	assert.Equal(t, []string{"one.jpg", "two.jpg"}, rec.Fields.Images)
	assert.Equal(t, "2026", rec.Fields.Date)
	assert.Equal(t, []any{"one.jpg", "two.jpg"}, backend.lastCreateFields["images"])
	assert.Equal(t, "2026", backend.lastCreateFields["date"])
}

func TestAlbumUpdate_LeavesDateUntouched(t *testing.T) {
	backend := &fakeBackend{}
	albums := NewAlbumCollection(backend)

	err := albums.Update(context.Background(), "al1", AlbumForm{
		Title:      "Renamed",
		CoverImage: "cover.jpg",
		Images:     "one.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "al1", backend.lastUpdateID)
	assert.NotContains(t, backend.lastUpdateFields, "date")
	assert.Equal(t, "Renamed", backend.lastUpdateFields["title"])
	assert.Equal(t, []any{"one.jpg"}, backend.lastUpdateFields["images"])
}
