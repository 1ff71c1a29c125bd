package query

import "strings"

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection normalizes an orderBy argument. Anything other than
// "asc"/"desc" (case-insensitive) is rejected.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "asc":
		return Asc, true
	case "desc":
		return Desc, true
	default:
		return "", false
	}
}

// Sort is a single-column order specification. A nil *Sort means unordered.
type Sort struct {
	Direction Direction
}

// OrderClause renders the ORDER BY expression for the given column.
func (s *Sort) OrderClause(column string) string {
	if s.Direction == Desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// UserFilter holds the optional equality filters of getAllUsers.
// Nil fields are omitted from the predicate.
type UserFilter struct {
	IsBlocked *bool
	IsDeleted *bool
}

// Conditions returns the filter as a column->value map, omitting unset fields.
func (f UserFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.IsBlocked != nil {
		conds["is_blocked"] = *f.IsBlocked
	}
	if f.IsDeleted != nil {
		conds["is_deleted"] = *f.IsDeleted
	}
	return conds
}

// ReviewFilter holds the optional equality filters of getAllReviews.
type ReviewFilter struct {
	IsFlagged *bool
	IsDeleted *bool
	Rating    *int
}

func (f ReviewFilter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.IsFlagged != nil {
		conds["is_flagged"] = *f.IsFlagged
	}
	if f.IsDeleted != nil {
		conds["is_deleted"] = *f.IsDeleted
	}
	if f.Rating != nil {
		conds["rating"] = *f.Rating
	}
	return conds
}
