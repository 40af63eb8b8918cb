package memory

import (
	"context"

	"cisoevents/internal/domain"
)

// catalogRepo serves the read-only seed entities. The seed is never mutated
// in place; every read returns fresh slices so callers cannot write back.
type catalogRepo struct {
	seed *Seed
}

// NewCatalogRepository returns a CatalogRepository over the given seed.
func NewCatalogRepository(seed *Seed) domain.CatalogRepository {
	return &catalogRepo{seed: seed}
}

func (r *catalogRepo) Speakers(ctx context.Context) ([]*domain.Speaker, error) {
	out := make([]*domain.Speaker, len(r.seed.Speakers))
	for i, s := range r.seed.Speakers {
		c := *s
		out[i] = &c
	}
	return out, nil
}

func (r *catalogRepo) AgendaItems(ctx context.Context) ([]*domain.AgendaItem, error) {
	out := make([]*domain.AgendaItem, len(r.seed.AgendaItems))
	for i, a := range r.seed.AgendaItems {
		c := *a
		c.SpeakerIDs = append([]string(nil), a.SpeakerIDs...)
		out[i] = &c
	}
	return out, nil
}

func (r *catalogRepo) Podcasts(ctx context.Context) ([]*domain.Podcast, error) {
	out := make([]*domain.Podcast, len(r.seed.Podcasts))
	for i, p := range r.seed.Podcasts {
		c := *p
		out[i] = &c
	}
	return out, nil
}

func (r *catalogRepo) Sponsors(ctx context.Context) (*domain.SponsorTiers, error) {
	return &domain.SponsorTiers{
		Platinum: cloneSponsors(r.seed.Sponsors.Platinum),
		Gold:     cloneSponsors(r.seed.Sponsors.Gold),
		Silver:   cloneSponsors(r.seed.Sponsors.Silver),
	}, nil
}

func (r *catalogRepo) Stats(ctx context.Context) ([]*domain.Stat, error) {
	out := make([]*domain.Stat, len(r.seed.Stats))
	for i, s := range r.seed.Stats {
		c := *s
		out[i] = &c
	}
	return out, nil
}

func cloneSponsors(in []*domain.Sponsor) []*domain.Sponsor {
	out := make([]*domain.Sponsor, len(in))
	for i, s := range in {
		c := *s
		out[i] = &c
	}
	return out
}
