package postgres

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/newsletter-server/internal/model"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	_ model.SubscriberStore = (*SubscriberRepository)(nil)
	_ model.SubscriberTx    = (*subscriberTx)(nil)
)

type SubscriberRepository struct {
	db *Connection
}

func NewSubscriberRepository(db *Connection) *SubscriberRepository {
	return &SubscriberRepository{
		db: db,
	}
}

func (r *SubscriberRepository) Begin(ctx context.Context) (model.SubscriberTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", model.ErrStore, err)
	}

	return &subscriberTx{tx: tx}, nil
}

func (r *SubscriberRepository) FindSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, bool, error) {
	const query = `SELECT subscriber_id FROM subscription_tokens WHERE subscription_token = $1`

	var subscriberID uuid.UUID
	err := r.db.QueryRow(ctx, query, token).Scan(&subscriberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("%w: failed to get subscriber id by token: %w", model.ErrStore, err)
	}

	return subscriberID, true, nil
}

func (r *SubscriberRepository) ConfirmSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	const query = `UPDATE subscriptions SET status = $1 WHERE id = $2`

	cmd, err := r.db.Exec(ctx, query, string(model.StatusConfirmed), subscriberID)
	if err != nil {
		return fmt.Errorf("%w: failed to confirm subscriber: %w", model.ErrStore, err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *SubscriberRepository) ListConfirmedSubscribers(ctx context.Context) iter.Seq2[model.ConfirmedSubscriber, error] {
	return func(yield func(model.ConfirmedSubscriber, error) bool) {
		const query = `SELECT id, email FROM subscriptions WHERE status = $1`

		rows, err := r.db.Query(ctx, query, string(model.StatusConfirmed))
		if err != nil {
			yield(model.ConfirmedSubscriber{}, fmt.Errorf("%w: failed to query confirmed subscribers: %w", model.ErrStore, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id    uuid.UUID
				email string
			)
			if err := rows.Scan(&id, &email); err != nil {
				yield(model.ConfirmedSubscriber{}, fmt.Errorf("%w: failed to scan confirmed subscriber: %w", model.ErrStore, err))
				return
			}

			if !yield(model.NewConfirmedSubscriber(id, email), nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.ConfirmedSubscriber{}, fmt.Errorf("%w: failed to read confirmed subscribers: %w", model.ErrStore, err))
		}
	}
}

func (r *SubscriberRepository) GetSubscriberByEmail(ctx context.Context, email string) (model.Subscriber, error) {
	const query = `SELECT id, email, name, status, subscribed_at FROM subscriptions WHERE email = $1`

	var subscriber model.Subscriber
	err := r.db.QueryRow(ctx, query, email).Scan(
		&subscriber.ID, &subscriber.Email, &subscriber.Name, &subscriber.Status, &subscriber.SubscribedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Subscriber{}, model.ErrNotFound
		}
		return model.Subscriber{}, fmt.Errorf("%w: failed to get subscriber by email: %w", model.ErrStore, err)
	}

	return subscriber, nil
}

type subscriberTx struct {
	tx pgx.Tx
}

func (t *subscriberTx) InsertSubscriber(ctx context.Context, subscriber model.NewSubscriber) (uuid.UUID, error) {
	const query = `INSERT INTO subscriptions (id, email, name, subscribed_at, status)
			  VALUES ($1, $2, $3, $4, $5)`

	id := uuid.New()
	_, err := t.tx.Exec(ctx, query,
		id, subscriber.Email.String(), subscriber.Name.String(),
		time.Now().UTC(), string(model.StatusPendingConfirmation),
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return uuid.Nil, fmt.Errorf("failed to insert subscriber: %w", model.ErrConflict)
		}
		return uuid.Nil, fmt.Errorf("%w: failed to insert subscriber: %w", model.ErrStore, err)
	}

	return id, nil
}

func (t *subscriberTx) StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error {
	const query = `INSERT INTO subscription_tokens (subscription_token, subscriber_id) VALUES ($1, $2)`

	if _, err := t.tx.Exec(ctx, query, token, subscriberID); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: subscriber %s does not exist: %w", model.ErrStore, subscriberID, err)
		}
		return fmt.Errorf("%w: failed to store subscription token: %w", model.ErrStore, err)
	}

	return nil
}

func (t *subscriberTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", model.ErrStore, err)
	}
	return nil
}

func (t *subscriberTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: failed to rollback transaction: %w", model.ErrStore, err)
	}
	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
