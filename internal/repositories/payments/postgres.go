// Package payments provides the SQL repository for ledger payments and the
// filtered read path that feeds the payment table.
package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/payledger/internal/dbx"
	"github.com/dmitrijs2005/payledger/internal/models"
)

// PostgresRepository implements payment storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts p and sets its ID. Amount must already be computed.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	query := `
		INSERT INTO payments (user_id, category_id, payment_date, description, quantity, unit_price, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.CategoryID, p.Date, p.Description, p.Quantity, p.UnitPrice, p.Amount).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Select returns the user's payments in [From, To], newest first. Rows of
// the same day keep insertion order.
func (r *PostgresRepository) Select(ctx context.Context, f models.PaymentFilter) ([]models.PaymentView, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.id, p.payment_date, p.description, p.quantity, p.unit_price, p.amount, c.name
		FROM payments p
		JOIN categories c ON c.id = p.category_id
		WHERE p.user_id = $1 AND p.payment_date BETWEEN $2 AND $3`)

	args := []any{f.UserID, f.From, f.To}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		fmt.Fprintf(&sb, " AND p.category_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY p.payment_date DESC, p.id ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	defer rows.Close()

	result := make([]models.PaymentView, 0)
	for rows.Next() {
		var v models.PaymentView
		if err := rows.Scan(&v.ID, &v.Date, &v.Description, &v.Quantity, &v.UnitPrice, &v.Amount, &v.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	return result, nil
}

// Delete removes payment id if it belongs to userID and reports the number
// of rows removed (0 or 1).
func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	query := `DELETE FROM payments WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
