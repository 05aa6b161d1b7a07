package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"github.com/budget-foyer/backend/internal/models"
)

// Export serializes the state into the current envelope version.
func Export(state models.State) ([]byte, error) {
	month := state.SelectedMonth
	mode := state.HouseholdMode
	rate := state.FoyerSavingRate

	doc := Document{
		Version:                     Version,
		ExportDate:                  time.Now().UTC().Format(time.RFC3339),
		Items:                       state.Items,
		SavingRates:                 state.SavingRates,
		CommunalChargesDistribution: state.CommunalChargesDistribution,
		Owners:                      state.Owners,
		SelectedMonth:               &month,
		HouseholdMode:               &mode,
		FoyerSavingRate:             &rate,
		RecurringItems:              state.RecurringItems,
		AppliedRecurringMonths:      state.AppliedRecurringMonths,
		CategoryBudgets:             state.CategoryBudgets,
		SavingsGoals:                state.SavingsGoals,
	}

	return json.MarshalIndent(doc, "", "  ")
}

// ExportCSV writes the selected month's items as a semicolon-delimited
// table with a French header row.
func ExportCSV(state models.State) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write([]string{"Mois", "Type", "Proprietaire", "Categorie", "Montant"}); err != nil {
		return nil, err
	}
	for _, item := range state.CurrentMonthItems() {
		record := []string{
			item.Month.String(),
			string(item.Type),
			item.Owner,
			item.Category,
			item.Amount.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
