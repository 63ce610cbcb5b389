package content

import (
	"context"
	"strings"

	"github.com/gremioaf/portal/internal/content/docstore"
)

// AlbumCollection is the photo-album facade. The admin form supplies image
// links as one comma-separated string; splitting and trimming them happens
// here, at the facade boundary, keeping the generic store shape-agnostic.
type AlbumCollection struct {
	c Collection[AlbumFields, AlbumPatch]
}

// NewAlbumCollection constructs the album facade.
func NewAlbumCollection(backend Backend) AlbumCollection {
	return AlbumCollection{c: NewCollection[AlbumFields, AlbumPatch](docstore.KindAlbum, backend)}
}

// SplitImageLinks turns a comma-separated list of links into an ordered
// sequence, trimming whitespace and dropping empty entries.
func SplitImageLinks(s string) []string {
	parts := strings.Split(s, ",")
	links := make([]string, 0, len(parts))
	for _, p := range parts {
		if link := strings.TrimSpace(p); link != "" {
			links = append(links, link)
		}
	}
	return links
}

// JoinImageLinks is the inverse of SplitImageLinks, used to seed an album
// draft from an existing record.
func JoinImageLinks(links []string) string {
	return strings.Join(links, ", ")
}

func (a AlbumCollection) Kind() docstore.Kind {
	return a.c.Kind()
}

func (a AlbumCollection) List(ctx context.Context) []Record[AlbumFields] {
	return a.c.List(ctx)
}

// Create persists a new album with the given display date.
func (a AlbumCollection) Create(ctx context.Context, form AlbumForm, date string) (Record[AlbumFields], error) {
	fields := AlbumFields{
		AlbumPatch: AlbumPatch{
			Title:      form.Title,
			CoverImage: form.CoverImage,
			Images:     SplitImageLinks(form.Images),
		},
		Date: date,
	}
	return a.c.Create(ctx, fields)
}

// Update merges the form fields into an existing album; the display date is
// not part of the form and stays untouched.
func (a AlbumCollection) Update(ctx context.Context, id string, form AlbumForm) error {
	patch := AlbumPatch{
		Title:      form.Title,
		CoverImage: form.CoverImage,
		Images:     SplitImageLinks(form.Images),
	}
	return a.c.Update(ctx, id, patch)
}

func (a AlbumCollection) Delete(ctx context.Context, id string) error {
	return a.c.Delete(ctx, id)
}
