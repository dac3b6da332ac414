package bonus_repo

import (
	"context"

	"pixel_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	table     = "bonus_claims"
	colPlayer = "player_id"
	colKey    = "bonus_key"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPostgresRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BonusRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: getter,
	}
}

// IsClaimed - получал ли игрок бонус
func (r *pgRepo) IsClaimed(ctx context.Context, playerID, key string) (bool, error) {
	query := sq.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{colPlayer: playerID, colKey: key}).
		Suffix(")").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "select bonus claim")
	}
	return exists, nil
}

// MarkClaimed - помечает бонус полученным. Повторная отметка ничего не меняет
func (r *pgRepo) MarkClaimed(ctx context.Context, playerID, key string) error {
	query := sq.Insert(table).
		Columns(colPlayer, colKey).
		Values(playerID, key).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return errors.Wrap(err, "insert bonus claim")
	}
	return nil
}
