package content

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// AboutPage bundles the unrelated collections the about page renders.
type AboutPage struct {
	Profile *Profile           `json:"profile"`
	Stats   []AboutStat        `json:"stats"`
	Traits  []PersonalityTrait `json:"traits"`
}

// AboutPageData fetches the about-page collections. The three reads are
// independent, so they are issued concurrently and joined before returning.
// A missing profile is not an error; the page renders without it.
func (s *Service) AboutPageData(ctx context.Context) (AboutPage, error) {
	var page AboutPage

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		profile, err := s.GetProfile(groupCtx)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		page.Profile = &profile
		return nil
	})
	group.Go(func() error {
		stats, err := listOrdered[AboutStat](s, groupCtx, "content.about_page.stats", "display_order ASC, created_at ASC")
		if err != nil {
			return err
		}
		page.Stats = stats
		return nil
	})
	group.Go(func() error {
		traits, err := listOrdered[PersonalityTrait](s, groupCtx, "content.about_page.traits", "display_order ASC, created_at ASC")
		if err != nil {
			return err
		}
		page.Traits = traits
		return nil
	})

	if err := group.Wait(); err != nil {
		return AboutPage{}, err
	}
	return page, nil
}
