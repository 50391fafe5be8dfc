package problem

import (
	"errors"
	"strings"

	problemerrors "go-plastindo/internal/problem/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return problemerrors.ErrProblemNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503: foreign key violation, employee sudah dihapus
		if pgErr.Code == "23503" {
			return problemerrors.ErrEmployeeNotFound
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint") {
		return problemerrors.ErrEmployeeNotFound
	}

	return err
}
