package validator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ristiisa/credit-card-validator/expiration"
	"github.com/ristiisa/credit-card-validator/internal/expiry"
	"github.com/ristiisa/credit-card-validator/validator/models"
)

// Service checks expiration date input and decorates valid dates with
// the instant they stop being usable and their canonical card-face
// form. It holds only immutable config and is safe for concurrent use.
type Service struct {
	cfg *Config
	now func() time.Time
}

func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// Check validates raw against the wall clock.
func (s *Service) Check(raw string) (models.Validation, error) {
	return s.CheckAt(raw, s.now())
}

// CheckAt validates raw against an explicit current date.
func (s *Service) CheckAt(raw string, at time.Time) (models.Validation, error) {
	res, err := expiration.ValidateWithin(raw, at, s.cfg.MaxYearsInFuture)
	if err != nil {
		return models.Validation{}, fmt.Errorf("validating expiration date: %w", err)
	}

	v := models.Validation{
		Input:            raw,
		Valid:            res.IsValid,
		PotentiallyValid: res.IsPotentiallyValid,
		Message:          res.Message,
	}

	monthToken, yearToken, ok := expiration.Parse(raw)
	if !res.IsValid {
		// A rejected date that still names a real calendar month is
		// reported as expired when that month lies behind the clock,
		// so callers can tell "has passed" from "not plausible yet".
		if ok {
			if month, err := strconv.Atoi(monthToken); err == nil && month >= 1 && month <= 12 {
				if year, err := expiry.ResolveYear(yearToken, at); err == nil {
					v.Expired = expiry.IsExpired(year, time.Month(month), at, nil)
				}
			}
		}
		return v, nil
	}

	// A valid result re-parses by construction; failure here means the
	// library and this service disagree on the grammar.
	if !ok {
		return models.Validation{}, fmt.Errorf("input %q validated but did not re-parse", raw)
	}
	month, err := strconv.Atoi(monthToken)
	if err != nil {
		return models.Validation{}, fmt.Errorf("month token %q: %w", monthToken, err)
	}
	year, err := expiry.ResolveYear(yearToken, at)
	if err != nil {
		return models.Validation{}, fmt.Errorf("resolving year: %w", err)
	}

	end := expiry.EndOfMonth(year, time.Month(month), nil)
	v.CardFace = expiry.CardFace(time.Month(month), year)
	v.ExpiresAt = &end

	return v, nil
}
