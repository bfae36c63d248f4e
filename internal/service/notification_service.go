package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"moshood-fashion/internal/mailer"
	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/rs/zerolog"
)

const (
	// digestProductCount is how many products each digest email features.
	digestProductCount = 3

	// digestCataloguePage is the page size used when walking the
	// catalogue; the random selection draws from every page.
	digestCataloguePage = 200
)

type notificationService struct {
	subscriptionRepo repository.SubscriptionRepository
	productRepo      repository.ProductRepository
	mail             mailer.Mailer
	logger           zerolog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	subscriptionRepo repository.SubscriptionRepository,
	productRepo repository.ProductRepository,
	mail mailer.Mailer,
	logger zerolog.Logger,
) NotificationService {
	return &notificationService{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		mail:             mail,
		logger:           logger.With().Str("service", "notification").Logger(),
	}
}

// Dispatch sends the digest email for the given mode to every distinct
// subscriber. Sends run concurrently and are all awaited; a single
// failed send fails the whole dispatch. No subscribers is a success.
func (s *notificationService) Dispatch(ctx context.Context, mode model.NotificationMode) (int, error) {
	subs, err := s.subscriptionRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list subscribers: %w", err)
	}

	emails := dedupEmails(subs)
	if len(emails) == 0 {
		s.logger.Info().Str("mode", string(mode)).Msg("no subscribers, nothing to send")
		return 0, nil
	}

	products := s.pickProducts(ctx)
	weekend := mode == model.ModeWeekend
	subject := mailer.DigestSubject(weekend)
	body := mailer.DigestBody(weekend, products)

	var wg sync.WaitGroup
	errs := make(chan error, len(emails))

	for _, email := range emails {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := s.mail.Send(ctx, to, subject, body); err != nil {
				s.logger.Error().Err(err).Str("email", to).Msg("failed to send digest")
				errs <- err
			}
		}(email)
	}

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return len(emails), fmt.Errorf("failed to send one or more digests: %w", err)
	}

	s.logger.Info().Str("mode", string(mode)).Int("emails_sent", len(emails)).Msg("digest dispatched")
	return len(emails), nil
}

// pickProducts selects up to digestProductCount random products that
// have at least one image. When the catalogue has none it falls back to
// a sample product so the email still renders.
func (s *notificationService) pickProducts(ctx context.Context) []model.Product {
	var withImages []model.Product
	for offset := 0; ; offset += digestCataloguePage {
		page, err := s.productRepo.GetAll(ctx, digestCataloguePage, offset)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to load products for digest")
			break
		}
		for _, p := range page {
			if len(p.Images) > 0 {
				withImages = append(withImages, p)
			}
		}
		if len(page) < digestCataloguePage {
			break
		}
	}

	if len(withImages) == 0 {
		return []model.Product{sampleProduct()}
	}

	picked := make([]model.Product, 0, digestProductCount)
	for _, i := range rand.Perm(len(withImages)) {
		picked = append(picked, withImages[i])
		if len(picked) == digestProductCount {
			break
		}
	}
	return picked
}

func sampleProduct() model.Product {
	return model.Product{
		Name:     "Sample Product",
		Category: "Featured",
		Price:    9999,
		Images: []string{
			"https://moshoodfashion.store/images/sample-front.jpg",
			"https://moshoodfashion.store/images/sample-back.jpg",
		},
	}
}

func dedupEmails(subs []model.Subscription) []string {
	seen := make(map[string]struct{}, len(subs))
	emails := make([]string, 0, len(subs))
	for _, sub := range subs {
		if _, ok := seen[sub.Email]; ok {
			continue
		}
		seen[sub.Email] = struct{}{}
		emails = append(emails, sub.Email)
	}
	return emails
}
