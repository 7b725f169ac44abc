package services

import (
	"errors"

	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// CreditStatus is the derived view of an identity's credit ledger. It is
// always computed from the profile at read time, never stored.
type CreditStatus struct {
	Identity            string `json:"identity"`
	DisplayName         string `json:"displayName"`
	TotalCreditsAllowed uint64 `json:"totalCreditsAllowed"`
	CreditsConsumed     uint64 `json:"creditsConsumed"`
	CreditsRemaining    uint64 `json:"creditsRemaining"`
}

func creditStatusFromProfile(p *models.UserProfile) CreditStatus {
	return CreditStatus{
		Identity:            p.Identity,
		DisplayName:         p.DisplayName,
		TotalCreditsAllowed: p.TotalCreditsAllowed,
		CreditsConsumed:     p.CreditsConsumed,
		CreditsRemaining:    p.TotalCreditsAllowed - p.CreditsConsumed,
	}
}

// ConsumeCredits atomically checks and increments the caller's consumed
// credits. It returns false when the balance is insufficient or no profile
// exists; that is an expected business outcome, not an error. State is
// unchanged on a false return.
func ConsumeCredits(db *gorm.DB, identity string, amount uint64) (bool, error) {
	consumed := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var profile models.UserProfile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("identity = ?", identity).
			First(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// Subtraction form: the sum would wrap on uint64 for very large amounts.
		if amount > profile.TotalCreditsAllowed-profile.CreditsConsumed {
			return nil
		}

		if err := tx.Model(&profile).
			Update("credits_consumed", profile.CreditsConsumed+amount).Error; err != nil {
			return err
		}

		consumed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return consumed, nil
}

// GetCreditBalance returns the derived credit status for an identity, or
// nil when no profile exists.
func GetCreditBalance(db *gorm.DB, identity string) (*CreditStatus, error) {
	profile, err := GetProfile(db, identity)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	status := creditStatusFromProfile(profile)
	return &status, nil
}

// ListAllCreditBalances returns the derived credit status of every profile,
// computed on demand. The MAX_EXECUTION_TIME hint caps the scan on MySQL;
// other dialects ignore the hint comment.
func ListAllCreditBalances(db *gorm.DB) ([]CreditStatus, error) {
	var profiles []models.UserProfile
	err := db.Clauses(hints.New("MAX_EXECUTION_TIME(5000)")).
		Order("identity").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]CreditStatus, 0, len(profiles))
	for i := range profiles {
		statuses = append(statuses, creditStatusFromProfile(&profiles[i]))
	}
	return statuses, nil
}
