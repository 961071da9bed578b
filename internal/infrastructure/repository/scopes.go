package repository

import (
	"strings"

	"github.com/sangkips/abs-inventory-api/pkg/pagination"
	"gorm.io/gorm"
)

// SearchScope returns a GORM scope matching term case-insensitively against
// any of the given columns. An empty term leaves the query untouched.
// LOWER/LIKE is used instead of ILIKE so the scope runs on SQLite as well.
func SearchScope(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// Paginate returns a GORM scope applying offset and limit from params
func Paginate(params *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		params.Validate()
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}
