package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// whereColumn limits a card query to one partition. A nil id selects unfiled cards.
func whereColumn(db *gorm.DB, columnID *uuid.UUID) *gorm.DB {
	if columnID == nil {
		return db.Where("column_id IS NULL")
	}
	return db.Where("column_id = ?", *columnID)
}

// whereTitleContains matches a case-insensitive substring of the title. An
// empty needle matches everything.
func whereTitleContains(db *gorm.DB, needle string) *gorm.DB {
	if needle == "" {
		return db
	}
	return db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(needle))+"%")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
