package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/unseeyou/everything-bot/internal/catalog"
	"github.com/unseeyou/everything-bot/internal/domain"
	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/metrics"
)

const (
	// WorkSaddenMin and WorkSaddenMax bound the happiness each owned pet
	// loses when its owner works a shift. Neglect is part of the job.
	WorkSaddenMin = 5
	WorkSaddenMax = 15
)

// ApplyJob assigns a job. A user who already holds one must resign first.
func (s *service) ApplyJob(ctx context.Context, userID, jobName string) (domain.Job, error) {
	current, err := s.CurrentJob(ctx, userID)
	if err != nil {
		return domain.Job{}, err
	}
	if !current.IsUnemployed() {
		return domain.Job{}, fmt.Errorf("%w: currently a %s", domain.ErrAlreadyEmployed, current.Name)
	}

	job, ok := catalog.JobByName(s.jobs, jobName)
	if !ok || job.IsUnemployed() {
		return domain.Job{}, fmt.Errorf("%w: %s", domain.ErrJobNotFound, jobName)
	}

	if err := s.repo.SetJob(ctx, userID, job.Name); err != nil {
		return domain.Job{}, err
	}
	logger.FromContext(ctx).Info("Job applied", "user_id", userID, "job", job.Name)
	return job, nil
}

// Resign clears the stored job by writing the sentinel.
func (s *service) Resign(ctx context.Context, userID string) error {
	if err := s.repo.SetJob(ctx, userID, domain.Unemployed.Name); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Job resigned", "user_id", userID)
	return nil
}

// CurrentJob returns the user's job, Unemployed when none is stored.
func (s *service) CurrentJob(ctx context.Context, userID string) (domain.Job, error) {
	jobName, err := s.repo.GetJob(ctx, userID)
	if err != nil {
		return domain.Job{}, err
	}
	if jobName == "" {
		return domain.Unemployed, nil
	}
	job, ok := catalog.JobByName(s.jobs, jobName)
	if !ok {
		return domain.Unemployed, nil
	}
	return job, nil
}

// Work credits one shift's salary (after earnings multipliers) and saddens
// every owned pet. The salary credit and the pet decay persist together in
// one aggregate write.
func (s *service) Work(ctx context.Context, userID string) (*WorkResult, error) {
	log := logger.FromContext(ctx)

	acct, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if acct.Job.IsUnemployed() {
		metrics.RecordTransaction("work", false)
		return nil, domain.ErrNoJob
	}

	earned := s.multiplyEarnings(ctx, acct, acct.Job.Salary)
	saddened := s.saddenPets(acct)

	if err := s.editWallet(ctx, acct, earned); err != nil {
		return nil, err
	}

	metrics.RecordTransaction("work", true)
	metrics.MoneyMovedCents.WithLabelValues("work").Add(float64(earned))
	log.Info("Shift worked", "user_id", userID, "job", acct.Job.Name, "earned", earned, "pets_saddened", saddened)

	return &WorkResult{Job: acct.Job, Earned: earned, PetsSaddened: saddened}, nil
}

// multiplyEarnings applies every active effect item to the pending earnings
// and consumes one charge per activation, dropping items that run out.
// Effect items are matched by item id substring against the effects table.
func (s *service) multiplyEarnings(ctx context.Context, acct *Account, base domain.Money) domain.Money {
	earned := base
	// Snapshot first; the remove-old/add-new protocol reorders the
	// underlying sequence.
	snapshot := append([]domain.ShopItem(nil), acct.Inventory.Items()...)
	for _, item := range snapshot {
		effect, ok := matchEffect(item.ItemID)
		if !ok {
			continue
		}
		earned = earned.MultiplyRounded(effect.Multiplier)

		remaining, _ := item.Data.Int("duration")
		remaining--
		acct.Inventory.Remove(item)
		if remaining > 0 {
			updated := item.Clone()
			updated.Data["duration"] = remaining
			acct.Inventory.Add(updated)
		}
		logger.FromContext(ctx).Debug("Effect consumed", "user_id", acct.UserID, "item", item.Name, "remaining", remaining)
	}
	return earned
}

func matchEffect(itemID string) (catalog.Effect, bool) {
	if itemID == "" {
		return catalog.Effect{}, false
	}
	for key, effect := range catalog.Effects {
		if strings.Contains(itemID, key) {
			return effect, true
		}
	}
	return catalog.Effect{}, false
}

// saddenPets decays every owned pet's happiness by 5-15 points, floored at 0.
func (s *service) saddenPets(acct *Account) int {
	saddened := 0
	snapshot := append([]domain.ShopItem(nil), acct.Inventory.Items()...)
	for _, item := range snapshot {
		pet, ok := domain.PetFromItem(item)
		if !ok {
			continue
		}
		pet.Sadden(s.randInt(WorkSaddenMin, WorkSaddenMax))
		updated := pet.ApplyTo(item)
		acct.Inventory.Remove(item)
		acct.Inventory.Add(updated)
		saddened++
	}
	return saddened
}
