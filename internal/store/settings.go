package store

import (
	"fmt"
	"strings"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SetOwners renames the household owners. Old and new names pair by
// position: every record attributed to an old name is rewritten to the
// new name at the same index, and the owner-keyed configuration maps
// are remapped the same way.
//
// Saving rates of owners without a previous value default to 30%. The
// communal distribution keeps its values only when a 2-owner household
// stays a 2-owner household; a single owner takes 100% and every other
// transition resets to an even split.
func (s *Store) SetOwners(owners []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setOwners(owners)
	s.scheduleSave()
}

func (s *Store) setOwners(owners []string) {
	old := s.state.Owners

	var renames []ownerRename
	for i, name := range owners {
		if i >= len(old) || old[i] == name {
			continue
		}
		renames = append(renames, ownerRename{from: old[i], to: name})
	}
	s.applyRenames(renames)

	rates := make(map[string]decimal.Decimal, len(owners))
	for i, name := range owners {
		rates[name] = models.DefaultSavingRate
		if i < len(old) {
			if rate, ok := s.state.SavingRates[old[i]]; ok {
				rates[name] = rate
			}
		}
	}
	s.state.SavingRates = rates

	s.state.CommunalChargesDistribution = s.remapDistribution(old, owners)
	s.state.Owners = append([]string(nil), owners...)
}

type ownerRename struct {
	from, to string
}

// applyRenames rewrites owner names across every dependent record in a
// single pass. All old names are matched simultaneously, so swapping or
// rotating owners never cascades one rename into another.
func (s *Store) applyRenames(renames []ownerRename) {
	if len(renames) == 0 {
		return
	}

	newName := func(owner string) (string, bool) {
		for _, r := range renames {
			if strings.EqualFold(owner, r.from) {
				return r.to, true
			}
		}
		return "", false
	}

	for i := range s.state.Items {
		if to, ok := newName(s.state.Items[i].Owner); ok {
			s.state.Items[i].Owner = to
		}
	}
	for i := range s.state.RecurringItems {
		if to, ok := newName(s.state.RecurringItems[i].Owner); ok {
			s.state.RecurringItems[i].Owner = to
		}
	}
	for i := range s.state.SavingsGoals {
		goal := &s.state.SavingsGoals[i]
		if goal.Owner != nil {
			if to, ok := newName(*goal.Owner); ok {
				name := to
				goal.Owner = &name
			}
		}
		for j := range goal.Allocations {
			if goal.Allocations[j].Owner == nil {
				continue
			}
			if to, ok := newName(*goal.Allocations[j].Owner); ok {
				name := to
				goal.Allocations[j].Owner = &name
			}
		}
	}
	for category, budget := range s.state.CategoryBudgets {
		if len(budget.PerPerson) == 0 {
			continue
		}
		perPerson := make(map[string]decimal.Decimal, len(budget.PerPerson))
		for owner, limit := range budget.PerPerson {
			if to, ok := newName(owner); ok {
				owner = to
			}
			perPerson[owner] = limit
		}
		budget.PerPerson = perPerson
		s.state.CategoryBudgets[category] = budget
	}
}

func (s *Store) remapDistribution(old, owners []string) map[string]decimal.Decimal {
	distribution := make(map[string]decimal.Decimal, len(owners))

	switch {
	case len(owners) == 1:
		distribution[owners[0]] = hundred

	case len(owners) == 2 && len(old) == 2:
		// A 2-owner household staying at 2 owners keeps its split.
		even := hundred.Div(decimal.NewFromInt(2))
		for i, name := range owners {
			share, ok := s.state.CommunalChargesDistribution[old[i]]
			if !ok {
				share = even
			}
			distribution[name] = share
		}

	default:
		even := hundred.Div(decimal.NewFromInt(int64(len(owners))))
		for _, name := range owners {
			distribution[name] = even
		}
	}

	return distribution
}

// SetHouseholdMode switches the household arrangement. The owners list
// is normalized to the mode's requirement first: single keeps only the
// first owner, separate and joint need at least two and synthesize a
// second owner name when there is none.
func (s *Store) SetHouseholdMode(mode models.HouseholdMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owners := append([]string(nil), s.state.Owners...)
	switch mode {
	case models.ModeSingle:
		if len(owners) == 0 {
			owners = []string{"Personne 1"}
		}
		owners = owners[:1]
	case models.ModeSeparate, models.ModeJoint:
		for len(owners) < 2 {
			owners = append(owners, fmt.Sprintf("Personne %d", len(owners)+1))
		}
	}

	s.setOwners(owners)
	s.state.HouseholdMode = mode
	s.scheduleSave()
}

// SetSavingRate sets one owner's saving percentage.
func (s *Store) SetSavingRate(owner string, rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SavingRates == nil {
		s.state.SavingRates = map[string]decimal.Decimal{}
	}
	s.state.SavingRates[owner] = rate
	s.scheduleSave()
}

// SetCommunalChargesDistribution replaces the communal split. The
// values are taken as-is, they are not validated to sum to 100.
func (s *Store) SetCommunalChargesDistribution(distribution map[string]decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CommunalChargesDistribution = make(map[string]decimal.Decimal, len(distribution))
	for owner, share := range distribution {
		s.state.CommunalChargesDistribution[owner] = share
	}
	s.scheduleSave()
}

// SetFoyerSavingRate sets the joint-mode saving percentage.
func (s *Store) SetFoyerSavingRate(rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.FoyerSavingRate = rate
	s.scheduleSave()
}

// SetSelectedMonth switches the month being viewed and edited.
func (s *Store) SetSelectedMonth(month types.Month) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SelectedMonth = month
	s.scheduleSave()
}

// SetTheme stores the UI theme identifier.
func (s *Store) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Theme = theme
	s.scheduleSave()
}

// SetCategoryBudget sets the spending limits for one category.
func (s *Store) SetCategoryBudget(category string, budget models.CategoryBudget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CategoryBudgets == nil {
		s.state.CategoryBudgets = map[string]models.CategoryBudget{}
	}
	s.state.CategoryBudgets[category] = budget
	s.scheduleSave()
}

// DeleteCategoryBudget removes the limits for one category. An unknown
// category is a no-op.
func (s *Store) DeleteCategoryBudget(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.CategoryBudgets[category]; !ok {
		return
	}
	delete(s.state.CategoryBudgets, category)
	s.scheduleSave()
}
