package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	activeSlotConstraint  = "bookings_active_slot_uniq"
	bookingCodeConstraint = "bookings_code_uniq"
)

const bookingColumns = `id, booking_code, user_id, property_id, booking_date, shift_type,
	buyer_name, buyer_cnic, total_cost, status, reason, verified_by, rejected_by, notes,
	claim_source, claim_amount, claim_sender_name, claim_sender_phone, claim_transaction_id,
	claim_confidence, claim_screenshot_url, claim_submitted_at,
	pending_since, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) TryCreate(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistErr("begin tx", err)
	}
	defer tx.Rollback()

	// Проверка слота; гонку закрывает частичный уникальный индекс
	var taken bool
	checkQuery := `SELECT EXISTS(
				     SELECT 1 FROM bookings
				     WHERE property_id = $1 AND booking_date = $2 AND shift_type = $3
				       AND status = ANY($4))`
	if err = tx.QueryRowContext(
		ctx, checkQuery, b.PropertyID, b.BookingDate.Format(domain.DateLayout),
		b.Shift, pq.Array(domain.ActiveStatuses),
	).Scan(&taken); err != nil {
		return persistErr("check slot", err)
	}
	if taken {
		return domain.ErrSlotTaken
	}

	query := `INSERT INTO bookings (id, booking_code, user_id, property_id, booking_date, shift_type,
				buyer_name, buyer_cnic, total_cost, status, pending_since, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.Code, b.UserID, b.PropertyID, b.BookingDate.Format(domain.DateLayout), b.Shift,
		b.BuyerName, b.BuyerIDNumber, b.TotalCost, b.Status,
		b.PendingSince, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == uniqueViolation && pgErr.Constraint == activeSlotConstraint:
				return domain.ErrSlotTaken
			case pgErr.Code == uniqueViolation && pgErr.Constraint == bookingCodeConstraint:
				return domain.ErrBookingCodeTaken
			case pgErr.Code == foreignKeyViolation && strings.Contains(pgErr.Constraint, "property"):
				return domain.ErrPropertyNotFound
			case pgErr.Code == foreignKeyViolation && strings.Contains(pgErr.Constraint, "user"):
				return domain.ErrUserNotFound
			}
		}
		return persistErr("insert booking", err)
	}

	if err = tx.Commit(); err != nil {
		return persistErr("commit booking", err)
	}
	return nil
}

func (r *BookingRepository) Transition(ctx context.Context, t domain.Transition) (*domain.Booking, error) {
	set := []string{"status = $3", "updated_at = NOW()"}
	args := []any{t.BookingID, pq.Array(t.From), t.To}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if t.To == domain.BookingStatusPending {
		set = append(set, "pending_since = NOW()")
	}
	if t.Reason != "" {
		add("reason", t.Reason)
	}
	if t.VerifiedBy != "" {
		add("verified_by", t.VerifiedBy)
	}
	if t.RejectedBy != "" {
		add("rejected_by", t.RejectedBy)
	}
	if t.Notes != "" {
		add("notes", t.Notes)
	}
	if c := t.Claim; c != nil {
		add("claim_source", c.Source)
		add("claim_amount", nullDecimal(c.Amount))
		add("claim_sender_name", c.SenderName)
		add("claim_sender_phone", c.SenderPhone)
		add("claim_transaction_id", c.TransactionID)
		add("claim_confidence", nullFloat(c.Confidence))
		add("claim_screenshot_url", c.ScreenshotURL)
		add("claim_submitted_at", c.SubmittedAt)
	}

	// Атомарный CAS: обновляем только если статус всё ещё ожидаемый
	query := fmt.Sprintf(`UPDATE bookings SET %s
			  WHERE id = $1 AND status = ANY($2)
			  RETURNING %s`, strings.Join(set, ", "), bookingColumns)

	b, err := scanBooking(r.db.Master.QueryRowContext(ctx, query, args...))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, persistErr("transition booking", err)
	}

	var current domain.BookingStatus
	statusQuery := `SELECT status FROM bookings WHERE id = $1`
	if err = r.db.Master.QueryRowContext(ctx, statusQuery, t.BookingID).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, persistErr("read booking status", err)
	}

	return nil, &domain.StatusError{BookingID: t.BookingID, Current: current, Err: domain.ErrStaleStatus}
}

func (r *BookingRepository) FindPending(
	ctx context.Context, pendingBefore time.Time, after *domain.PendingCursor, limit int,
) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1 AND pending_since < $2
			  ORDER BY pending_since, id
			  LIMIT $3`
	args := []any{domain.BookingStatusPending, pendingBefore, limit}
	if after != nil {
		query = `SELECT ` + bookingColumns + `
				 FROM bookings
				 WHERE status = $1 AND pending_since < $2
				   AND (pending_since, id) > ($4, $5::uuid)
				 ORDER BY pending_since, id
				 LIMIT $3`
		args = append(args, after.PendingSince, after.ID)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, persistErr("find pending", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) Get(ctx context.Context, ref string) (*domain.Booking, error) {
	// ref: uuid брони или её код; код уникален (bookings_code_uniq)
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id::text = $1 OR booking_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ref)
	if err != nil {
		return nil, persistErr("get booking", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, persistErr("scan booking", err)
	}

	return b, nil
}

func (r *BookingRepository) IsSlotTaken(ctx context.Context, slot domain.Slot) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE property_id = $1 AND booking_date = $2 AND shift_type = $3
				  AND status = ANY($4))`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		slot.PropertyID, slot.Date.Format(domain.DateLayout), slot.Shift, pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return false, persistErr("check slot", err)
	}

	var taken bool
	if err = row.Scan(&taken); err != nil {
		return false, persistErr("scan slot", err)
	}

	return taken, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, persistErr("list bookings by user", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b             domain.Booking
		claimSource   sql.NullString
		claimAmount   decimal.NullDecimal
		claimSender   sql.NullString
		claimPhone    sql.NullString
		claimTxn      sql.NullString
		claimConf     sql.NullFloat64
		claimURL      sql.NullString
		claimSubmitAt sql.NullTime
	)

	err := row.Scan(
		&b.ID, &b.Code, &b.UserID, &b.PropertyID, &b.BookingDate, &b.Shift,
		&b.BuyerName, &b.BuyerIDNumber, &b.TotalCost, &b.Status,
		&b.Reason, &b.VerifiedBy, &b.RejectedBy, &b.Notes,
		&claimSource, &claimAmount, &claimSender, &claimPhone, &claimTxn,
		&claimConf, &claimURL, &claimSubmitAt,
		&b.PendingSince, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.BookingDate = domain.DateOnly(b.BookingDate)
	if claimSource.Valid {
		c := &domain.PaymentClaim{
			Source:        domain.ClaimSource(claimSource.String),
			SenderName:    claimSender.String,
			SenderPhone:   claimPhone.String,
			TransactionID: claimTxn.String,
			ScreenshotURL: claimURL.String,
			SubmittedAt:   claimSubmitAt.Time,
		}
		if claimAmount.Valid {
			amount := claimAmount.Decimal
			c.Amount = &amount
		}
		if claimConf.Valid {
			conf := claimConf.Float64
			c.Confidence = &conf
		}
		b.Claim = c
	}

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, persistErr("scan booking", err)
		}
		res = append(res, b)
	}

	if err := rows.Err(); err != nil {
		return nil, persistErr("iterate bookings", err)
	}
	return res, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
