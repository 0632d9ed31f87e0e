package services

import (
	"errors"
	"fmt"
	"strings"

	"sandwich-service/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// uniqueMessages maps unique constraint names to client-facing messages.
var uniqueMessages = map[string]string{
	"uq_customers_email": "Email must be unique",
	"uq_promotions_code": "Promotion code must be unique",
}

// Operation names used in error messages.
const (
	opCreate = "create"
	opList   = "list"
	opGet    = "get"
	opUpdate = "update"
	opDelete = "delete"
	opTotal  = "total"
)

// translateError maps a repository error to a ServiceError. Missing rows are
// 404; every storage failure is a 400. Unknown driver errors are logged and
// replaced with a generic message.
func translateError(log *zap.Logger, entity, op string, err error) *ServiceError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	if errors.Is(err, repository.ErrPromotionNotFound) {
		return invalid("Promotion not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if msg, ok := uniqueMessages[pgErr.ConstraintName]; ok {
				return invalid(msg)
			}
			return invalid(entity + " already exists")
		case pgForeignKeyViolation:
			if op == opDelete {
				return invalid(entity + " is still referenced by other records")
			}
			return invalid("Referenced record does not exist")
		case pgNotNullViolation:
			return invalid("Missing required field: " + pgErr.ColumnName)
		}
	}

	log.Error("storage error",
		zap.String("entity", entity),
		zap.String("operation", op),
		zap.Error(err),
	)
	return invalid(fmt.Sprintf("Failed to %s %s", op, strings.ToLower(entity)))
}
