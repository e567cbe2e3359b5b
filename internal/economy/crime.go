package economy

import (
	"context"
	"fmt"

	"github.com/unseeyou/everything-bot/internal/domain"
	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/metrics"
)

const (
	// StealChancePercent is the success chance of steal and bankrob.
	StealChancePercent = 70
	// StealCapCents bounds a single haul at 100 coins.
	StealCapCents = 100_00
)

// Steal attempts to take a random amount from the victim's wallet. A failed
// roll moves no funds; the caller still burns its cooldown either way.
func (s *service) Steal(ctx context.Context, thiefID, victimID string) (*CrimeResult, error) {
	return s.rob(ctx, thiefID, victimID, "steal", false)
}

// Bankrob is Steal against the victim's bank balance.
func (s *service) Bankrob(ctx context.Context, thiefID, victimID string) (*CrimeResult, error) {
	return s.rob(ctx, thiefID, victimID, "bankrob", true)
}

func (s *service) rob(ctx context.Context, thiefID, victimID, operation string, fromBank bool) (*CrimeResult, error) {
	log := logger.FromContext(ctx)

	if thiefID == victimID {
		metrics.RecordTransaction(operation, false)
		return nil, domain.ErrSelfTarget
	}

	victim, err := s.load(ctx, victimID)
	if err != nil {
		return nil, err
	}

	available := victim.Wallet
	if fromBank {
		available = victim.Bank
	}
	if available == 0 {
		metrics.RecordTransaction(operation, false)
		return nil, fmt.Errorf("%w: %s", domain.ErrNothingToSteal, victimID)
	}

	if s.randInt(1, 100) > StealChancePercent {
		metrics.RecordTransaction(operation, false)
		log.Info("Robbery failed", "operation", operation, "thief", thiefID, "victim", victimID)
		return &CrimeResult{Success: false, VictimWallet: victim.Wallet, VictimBank: victim.Bank}, nil
	}

	cap := StealCapCents
	if int(available) < cap {
		cap = int(available)
	}
	amount := domain.Money(s.randInt(1, cap))

	// Two separate persisted writes; a crash between them loses money
	// rather than duplicating it.
	if fromBank {
		if err := s.editBank(ctx, victim, -amount); err != nil {
			return nil, err
		}
	} else {
		if err := s.editWallet(ctx, victim, -amount); err != nil {
			return nil, err
		}
	}

	thief, err := s.load(ctx, thiefID)
	if err != nil {
		return nil, err
	}
	if err := s.editWallet(ctx, thief, amount); err != nil {
		return nil, err
	}

	metrics.RecordTransaction(operation, true)
	metrics.MoneyMovedCents.WithLabelValues(operation).Add(float64(amount))
	log.Info("Robbery succeeded", "operation", operation, "thief", thiefID, "victim", victimID, "amount", amount)

	return &CrimeResult{
		Success:      true,
		Amount:       amount,
		VictimWallet: victim.Wallet,
		VictimBank:   victim.Bank,
	}, nil
}
