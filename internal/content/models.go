// Package content exposes strongly-typed, per-kind entry points over the
// generic document store. Each facade binds one entity kind to its storage
// location and field shape, so callers never pass a raw collection name or an
// untyped payload.
package content

import "time"

// Record is a persisted instance of an entity kind: the store-assigned id,
// the server creation timestamp, and the kind's domain fields.
type Record[F any] struct {
	ID        string
	CreatedAt time.Time
	Fields    F
}

// NewsForm holds the news fields collected by the admin form.
type NewsForm struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	YouTubeURL string `json:"youtubeUrl,omitempty"`
}

// NewsFields is the full persisted shape of a news item. The display date is
// defaulted at creation and not collected by the form.
type NewsFields struct {
	NewsForm
	Date string `json:"date"`
}

// AnnouncementCategory classifies an announcement.
type AnnouncementCategory string

const (
	CategoryGeneral AnnouncementCategory = "general"
	CategoryUrgent  AnnouncementCategory = "urgent"
	CategoryEvent   AnnouncementCategory = "event"
)

type AnnouncementForm struct {
	Title    string               `json:"title"`
	Content  string               `json:"content"`
	Category AnnouncementCategory `json:"category"`
}

type AnnouncementFields struct {
	AnnouncementForm
	Date string `json:"date"`
}

// AlbumForm is the album draft as entered: the image links are a single
// comma-separated string until the facade splits them.
type AlbumForm struct {
	Title      string
	CoverImage string
	Images     string
}

// AlbumPatch is the update payload for an album: form fields with the image
// links already split, excluding the display date.
type AlbumPatch struct {
	Title      string   `json:"title"`
	CoverImage string   `json:"coverImage"`
	Images     []string `json:"images"`
}

type AlbumFields struct {
	AlbumPatch
	Date string `json:"date"`
}

// Sport identifies an interclass competition discipline.
type Sport string

const (
	SportIndoorSoccer Sport = "indoor-soccer"
	SportTableTennis  Sport = "table-tennis"
	SportChess        Sport = "chess"
)

// GameStatus is the lifecycle state of a match result.
type GameStatus string

const (
	StatusUpcoming GameStatus = "upcoming"
	StatusLive     GameStatus = "live"
	StatusFinished GameStatus = "finished"
)

type GameForm struct {
	TeamA  string `json:"teamA"`
	ScoreA int    `json:"scoreA"`
	TeamB  string `json:"teamB"`
	ScoreB int    `json:"scoreB"`
	Sport  Sport  `json:"sport"`
}

type GameFields struct {
	GameForm
	Status GameStatus `json:"status"`
	Date   string     `json:"date"`
}

// BookFields is a reading-list book; the form collects every field.
type BookFields struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Grade  string `json:"grade"`
}

// EventType classifies a calendar entry.
type EventType string

const (
	EventGeneral       EventType = "general"
	EventExam          EventType = "exam"
	EventAdmissionExam EventType = "admission-exam"
)

type EventFields struct {
	Title string    `json:"title"`
	Date  string    `json:"date"`
	Type  EventType `json:"type"`
}

// AdmissionFields is an admission-exam entry (name plus month label).
type AdmissionFields struct {
	Name  string `json:"name"`
	Month string `json:"month"`
}

// FeedbackFields is one mailbox entry, submitted by the public side.
type FeedbackFields struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Message  string `json:"message"`
}
