package readstore

import (
	"errors"

	"turfbook/internal/infra"
	"turfbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

func classifyPgErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
