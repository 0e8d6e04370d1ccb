package photographer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles photographer profile database operations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new photographer repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new profile together with its declared availability.
func (r *Repository) Create(ctx context.Context, profile *Profile, availability []AvailabilityEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO photographer_profiles (id, user_id, specialization, experience_years, fee_per_session, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Specialization,
		profile.ExperienceYears,
		profile.FeePerSession,
		profile.Status,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := insertAvailability(ctx, tx, profile.ID, availability); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID returns a profile by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	query := `SELECT * FROM photographer_profiles WHERE id = $1`
	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &profile, err
}

// GetByUserID returns the profile owned by a user account.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := `SELECT * FROM photographer_profiles WHERE user_id = $1`
	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &profile, err
}

// GetWithUser returns a profile joined with its account.
func (r *Repository) GetWithUser(ctx context.Context, id uuid.UUID) (*ProfileWithUser, error) {
	query := `
		SELECT p.*, u.name, u.email, u.contact, u.profile_image
		FROM photographer_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`
	var row ProfileWithUser
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &row, err
}

// ListByStatus returns profiles with the given status joined with accounts.
func (r *Repository) ListByStatus(ctx context.Context, status Status) ([]ProfileWithUser, error) {
	query := `
		SELECT p.*, u.name, u.email, u.contact, u.profile_image
		FROM photographer_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.status = $1
		ORDER BY p.created_at DESC
	`
	var rows []ProfileWithUser
	err := r.db.SelectContext(ctx, &rows, query, status)
	return rows, err
}

// ListAll returns every profile joined with accounts, for admin views.
func (r *Repository) ListAll(ctx context.Context) ([]ProfileWithUser, error) {
	query := `
		SELECT p.*, u.name, u.email, u.contact, u.profile_image
		FROM photographer_profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`
	var rows []ProfileWithUser
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

// UpdateDetails updates the photographer-editable attributes.
func (r *Repository) UpdateDetails(ctx context.Context, profile *Profile) error {
	query := `
		UPDATE photographer_profiles
		SET specialization = $2, experience_years = $3, fee_per_session = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.Specialization,
		profile.ExperienceYears,
		profile.FeePerSession,
	)
	return err
}

// UpdateStatus records an admin approval decision.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE photographer_profiles SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// GetAvailability returns the declared weekly availability grouped by weekday.
func (r *Repository) GetAvailability(ctx context.Context, photographerID uuid.UUID) ([]AvailabilityEntry, error) {
	query := `
		SELECT weekday, time_slot FROM availability_slots
		WHERE photographer_id = $1
		ORDER BY weekday, time_slot
	`
	type slotRow struct {
		Weekday  string `db:"weekday"`
		TimeSlot string `db:"time_slot"`
	}
	var rows []slotRow
	if err := r.db.SelectContext(ctx, &rows, query, photographerID); err != nil {
		return nil, err
	}

	byDay := make(map[string][]string)
	var order []string
	for _, row := range rows {
		if _, seen := byDay[row.Weekday]; !seen {
			order = append(order, row.Weekday)
		}
		byDay[row.Weekday] = append(byDay[row.Weekday], row.TimeSlot)
	}

	entries := make([]AvailabilityEntry, 0, len(order))
	for _, day := range order {
		entries = append(entries, AvailabilityEntry{Day: day, TimeSlots: byDay[day]})
	}
	return entries, nil
}

// SlotsForWeekday returns the declared slots for one weekday.
func (r *Repository) SlotsForWeekday(ctx context.Context, photographerID uuid.UUID, weekday string) ([]string, error) {
	query := `
		SELECT time_slot FROM availability_slots
		WHERE photographer_id = $1 AND weekday = $2
		ORDER BY time_slot
	`
	var slots []string
	err := r.db.SelectContext(ctx, &slots, query, photographerID, weekday)
	return slots, err
}

// ReplaceAvailability swaps the declared weekly availability in one transaction.
func (r *Repository) ReplaceAvailability(ctx context.Context, photographerID uuid.UUID, availability []AvailabilityEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM availability_slots WHERE photographer_id = $1`, photographerID); err != nil {
		return err
	}

	if err := insertAvailability(ctx, tx, photographerID, availability); err != nil {
		return err
	}

	return tx.Commit()
}

// GetAverageRating returns the mean review rating, 0 with no reviews.
func (r *Repository) GetAverageRating(ctx context.Context, photographerID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE photographer_id = $1`
	var avg float64
	err := r.db.GetContext(ctx, &avg, query, photographerID)
	return avg, err
}

func insertAvailability(ctx context.Context, tx *sqlx.Tx, photographerID uuid.UUID, availability []AvailabilityEntry) error {
	query := `
		INSERT INTO availability_slots (id, photographer_id, weekday, time_slot)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (photographer_id, weekday, time_slot) DO NOTHING
	`
	for _, entry := range availability {
		for _, slot := range entry.TimeSlots {
			if _, err := tx.ExecContext(ctx, query, uuid.New(), photographerID, entry.Day, slot); err != nil {
				return err
			}
		}
	}
	return nil
}
