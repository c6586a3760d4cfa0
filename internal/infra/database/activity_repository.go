package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/builtafrica/spin-promo/internal/entity"
)

type SpinActivityRepository struct {
	DB *sql.DB
}

func NewSpinActivityRepository(db *sql.DB) *SpinActivityRepository {
	return &SpinActivityRepository{DB: db}
}

const activityColumns = `
	id, wheel_id, name, email, phone_number,
	COALESCE(prize, ''), has_won_prize, number_of_spins,
	created_at, updated_at
`

// FindCurrent devolve o registro lógico corrente do participante.
// O banco pode guardar várias linhas históricas pro mesmo par
// (wheel_id, email); quem vale é sempre a de updated_at mais recente.
func (r *SpinActivityRepository) FindCurrent(ctx context.Context, wheelID, email string) (*entity.SpinActivity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM spin_activities
		WHERE wheel_id = $1 AND email = $2
		ORDER BY updated_at DESC
		LIMIT 1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, wheelID, email))
}

func (r *SpinActivityRepository) FindCurrentByEmail(ctx context.Context, email string) (*entity.SpinActivity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM spin_activities
		WHERE email = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *SpinActivityRepository) FindByID(ctx context.Context, id string) (*entity.SpinActivity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM spin_activities
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *SpinActivityRepository) Create(ctx context.Context, a *entity.SpinActivity) error {
	query := `
		INSERT INTO spin_activities
			(id, wheel_id, name, email, phone_number, prize, has_won_prize, number_of_spins, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.ID,
		a.WheelID,
		a.Name,
		a.Email,
		a.PhoneNumber,
		nullString(a.Prize),
		a.HasWonPrize,
		a.NumberOfSpins,
		a.CreatedAt,
		a.UpdatedAt,
	)

	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *SpinActivityRepository) Update(ctx context.Context, a *entity.SpinActivity) error {
	query := `
		UPDATE spin_activities
		SET wheel_id = $2, name = $3, email = $4, phone_number = $5,
			prize = $6, has_won_prize = $7, number_of_spins = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		a.ID,
		a.WheelID,
		a.Name,
		a.Email,
		a.PhoneNumber,
		nullString(a.Prize),
		a.HasWonPrize,
		a.NumberOfSpins,
	).Scan(&a.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrActivityNotFound
	}
	return err
}

// RecordOutcome aplica o giro inteiro num UPDATE só. Dois giros simultâneos
// do mesmo participante serializam na linha dentro do Postgres: nada de
// contagem perdida nem de prêmio sobrescrito.
func (r *SpinActivityRepository) RecordOutcome(ctx context.Context, id string, winning bool, prize string) (*entity.SpinActivity, error) {
	query := `
		UPDATE spin_activities
		SET number_of_spins = number_of_spins + 1,
			prize = CASE WHEN $2 AND NOT has_won_prize THEN $3 ELSE prize END,
			has_won_prize = has_won_prize OR $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + activityColumns + `
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id, winning, nullString(prize)))
}

// IncrementSpins soma 1 giro sem encostar nos campos de prêmio.
func (r *SpinActivityRepository) IncrementSpins(ctx context.Context, id string) (*entity.SpinActivity, error) {
	query := `
		UPDATE spin_activities
		SET number_of_spins = number_of_spins + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + activityColumns + `
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *SpinActivityRepository) scanOne(row *sql.Row) (*entity.SpinActivity, error) {
	a := &entity.SpinActivity{}
	err := row.Scan(
		&a.ID,
		&a.WheelID,
		&a.Name,
		&a.Email,
		&a.PhoneNumber,
		&a.Prize,
		&a.HasWonPrize,
		&a.NumberOfSpins,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
