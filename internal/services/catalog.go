package services

import (
	"context"
	"fmt"
	"strings"

	"cisoevents/internal/domain"
)

type catalogService struct {
	catalogRepo domain.CatalogRepository
}

// NewCatalogService creates the read-only listing service for seed entities.
// All filters are conjunctions of the active predicates; text search is a
// case-insensitive substring match and original relative order is preserved.
func NewCatalogService(catalogRepo domain.CatalogRepository) domain.CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListSpeakers(ctx context.Context, filter domain.SpeakerFilter) ([]*domain.Speaker, error) {
	speakers, err := s.catalogRepo.Speakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	q := strings.ToLower(filter.Search)
	out := make([]*domain.Speaker, 0, len(speakers))
	for _, sp := range speakers {
		if filter.Track != "" && sp.Track != filter.Track {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(sp.Name), q) &&
			!strings.Contains(strings.ToLower(sp.Title), q) &&
			!strings.Contains(strings.ToLower(sp.Company), q) {
			continue
		}
		out = append(out, sp)
	}
	return out, nil
}

func (s *catalogService) ListAgenda(ctx context.Context, filter domain.AgendaFilter) ([]*domain.AgendaItem, error) {
	items, err := s.catalogRepo.AgendaItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agenda: %w", err)
	}
	out := make([]*domain.AgendaItem, 0, len(items))
	for _, item := range items {
		if filter.Day != 0 && item.Day != filter.Day {
			continue
		}
		if filter.Track != "" && item.Track != filter.Track {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *catalogService) ListPodcasts(ctx context.Context) (*domain.Podcast, []*domain.Podcast, error) {
	podcasts, err := s.catalogRepo.Podcasts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list podcasts: %w", err)
	}
	var featured *domain.Podcast
	rest := make([]*domain.Podcast, 0, len(podcasts))
	for _, p := range podcasts {
		if p.Featured && featured == nil {
			featured = p
			continue
		}
		rest = append(rest, p)
	}
	return featured, rest, nil
}

func (s *catalogService) ListSponsors(ctx context.Context) (*domain.SponsorTiers, error) {
	tiers, err := s.catalogRepo.Sponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	return tiers, nil
}

func (s *catalogService) ListStats(ctx context.Context) ([]*domain.Stat, error) {
	stats, err := s.catalogRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	return stats, nil
}
