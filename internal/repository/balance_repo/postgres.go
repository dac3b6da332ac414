package balance_repo

import (
	"context"

	"pixel_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	table      = "wallets"
	colPlayer  = "player_id"
	colBalance = "balance"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPostgresRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BalanceRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetBalance - получение баланса игрока.
// Внутри транзакции строка блокируется до конца раунда
func (r *pgRepo) GetBalance(ctx context.Context, playerID string) (int, bool, error) {
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colPlayer: playerID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, false, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(err, "select balance")
	}

	return int(balance), true, nil
}

// SetBalance - записывает баланс, создавая кошелек при первой записи
func (r *pgRepo) SetBalance(ctx context.Context, playerID string, balance int) error {
	query := sq.Insert(table).
		Columns(colPlayer, colBalance).
		Values(playerID, int64(balance)).
		Suffix("ON CONFLICT (" + colPlayer + ") DO UPDATE SET " + colBalance + " = EXCLUDED." + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return errors.Wrap(err, "upsert balance")
	}

	return nil
}
