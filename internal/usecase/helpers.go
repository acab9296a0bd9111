package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return date, nil
}

// parseDatePtr parses an optional date field; empty input yields nil
func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// applyInvoicePayment appends a funded payment to the invoice and refreshes
// its derived status. Persistence is left to the caller's transaction.
func applyInvoicePayment(invoice *entity.SupplierInvoice, expenseID uuid.UUID, amount decimal.Decimal, date time.Time) {
	invoice.Payments = append(invoice.Payments, entity.InvoicePayment{
		ExpenseID: expenseID,
		Amount:    amount,
		Date:      date,
	})
	invoice.Status = invoice.DeriveStatus()
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
