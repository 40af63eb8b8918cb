package domain

import "context"

// Track is the categorical tag used to classify speakers and agenda sessions.
type Track string

const (
	TrackAI      Track = "AI"
	TrackCyber   Track = "Cyber"
	TrackStartup Track = "Startup"
)

// Speaker is a read-only seed entity shown on the speakers pages.
// swagger:model Speaker
type Speaker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Track    Track  `json:"track"`
	Photo    string `json:"photo"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linkedin"`
}

// AgendaItem is a scheduled session of the flagship event.
// swagger:model AgendaItem
type AgendaItem struct {
	ID          string   `json:"id"`
	Day         int      `json:"day"`
	StartTime   string   `json:"start_time"` // HH:MM
	EndTime     string   `json:"end_time"`   // HH:MM
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"` // keynote, panel, workshop, pitch, fireside, session
	Track       Track    `json:"track"`
	Location    string   `json:"location"`
	SpeakerIDs  []string `json:"speaker_ids"`
}

// Podcast is an on-demand episode.
// swagger:model Podcast
type Podcast struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	YouTubeID   string `json:"youtube_id"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Views       string `json:"views"`
	Featured    bool   `json:"featured"`
}

// Sponsor is a sponsoring company within a tier.
// swagger:model Sponsor
type Sponsor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SponsorTiers groups sponsors by tier for display.
type SponsorTiers struct {
	Platinum []*Sponsor `json:"platinum"`
	Gold     []*Sponsor `json:"gold"`
	Silver   []*Sponsor `json:"silver"`
}

// Stat is a headline figure shown on the home page.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SpeakerFilter narrows speaker listings. Search matches name, title, and
// company, case-insensitive substring; empty search matches everything.
type SpeakerFilter struct {
	Search string
	Track  Track
}

// AgendaFilter narrows agenda listings. Day 0 and empty track match everything.
type AgendaFilter struct {
	Day   int
	Track Track
}

// CatalogRepository provides read access to the seed dataset.
// Implementations must never expose internal slices for mutation.
type CatalogRepository interface {
	Speakers(ctx context.Context) ([]*Speaker, error)
	AgendaItems(ctx context.Context) ([]*AgendaItem, error)
	Podcasts(ctx context.Context) ([]*Podcast, error)
	Sponsors(ctx context.Context) (*SponsorTiers, error)
	Stats(ctx context.Context) ([]*Stat, error)
}

// CatalogService defines the read-only listing logic for seed entities.
type CatalogService interface {
	ListSpeakers(ctx context.Context, filter SpeakerFilter) ([]*Speaker, error)
	ListAgenda(ctx context.Context, filter AgendaFilter) ([]*AgendaItem, error)
	ListPodcasts(ctx context.Context) (featured *Podcast, rest []*Podcast, err error)
	ListSponsors(ctx context.Context) (*SponsorTiers, error)
	ListStats(ctx context.Context) ([]*Stat, error)
}
