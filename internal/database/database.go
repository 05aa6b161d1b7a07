// Package database persists the budget state as one named JSON
// snapshot row in a local SQLite database.
package database

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotName is the key of the single blob the backend writes.
const snapshotName = "budget"

// Snapshot is one named state blob.
type Snapshot struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// DB wraps the gorm connection.
type DB struct {
	db *gorm.DB
}

// Connect opens the database with the given driver and migrates the
// snapshot table.
func Connect(open func(string) gorm.Dialector, dsn string) (*DB, error) {
	db, err := gorm.Open(open(dsn), &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(Snapshot{}); err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// Save writes the full state snapshot, replacing the previous one.
func (d *DB) Save(state models.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return d.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&Snapshot{Name: snapshotName, Data: data}).Error
}

// Load reads the persisted snapshot. A missing or unreadable snapshot
// falls back to the default fresh state; prior data is not recovered.
func (d *DB) Load() models.State {
	var row Snapshot
	err := d.db.First(&row, "name = ?", snapshotName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultState()
	}
	if err != nil {
		log.Warn().Err(err).Msg("reading state snapshot failed, starting fresh")
		return models.DefaultState()
	}

	// Unmarshal over the defaults so fields a previous version did not
	// write keep their default value. The owner-keyed maps are cleared
	// first: unmarshalling merges into a non-nil map, and the default
	// owner keys must not survive next to a snapshot's real owners.
	state := models.DefaultState()
	state.SavingRates = nil
	state.CommunalChargesDistribution = nil
	if err := json.Unmarshal(row.Data, &state); err != nil {
		log.Warn().Err(err).Msg("state snapshot is corrupted, starting fresh")
		return models.DefaultState()
	}

	normalize(&state)
	return state
}

// normalize repairs records written by early versions: items without an
// id or month get a fresh id and the current month.
func normalize(state *models.State) {
	for i := range state.Items {
		if state.Items[i].ID == uuid.Nil {
			state.Items[i].ID = uuid.New()
		}
		if state.Items[i].Month.IsZero() {
			state.Items[i].Month = types.CurrentMonth()
		}
	}
	for i := range state.RecurringItems {
		if state.RecurringItems[i].ID == uuid.Nil {
			state.RecurringItems[i].ID = uuid.New()
		}
	}

	if state.Items == nil {
		state.Items = []models.Item{}
	}
	if state.RecurringItems == nil {
		state.RecurringItems = []models.RecurringItem{}
	}
	if state.AppliedRecurringMonths == nil {
		state.AppliedRecurringMonths = []types.Month{}
	}
	if state.CategoryBudgets == nil {
		state.CategoryBudgets = map[string]models.CategoryBudget{}
	}
	if state.SavingsGoals == nil {
		state.SavingsGoals = []models.SavingsGoal{}
	}
	if state.SelectedMonth.IsZero() {
		state.SelectedMonth = types.CurrentMonth()
	}

	if state.SavingRates == nil {
		state.SavingRates = make(map[string]decimal.Decimal, len(state.Owners))
		for _, owner := range state.Owners {
			state.SavingRates[owner] = models.DefaultSavingRate
		}
	}
	if state.CommunalChargesDistribution == nil {
		state.CommunalChargesDistribution = make(map[string]decimal.Decimal, len(state.Owners))
		if len(state.Owners) > 0 {
			share := decimal.NewFromInt(100).Div(decimal.NewFromInt(int64(len(state.Owners))))
			for _, owner := range state.Owners {
				state.CommunalChargesDistribution[owner] = share
			}
		}
	}
}
