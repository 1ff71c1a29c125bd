package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Direction
		ok    bool
	}{
		{name: "asc", input: "asc", want: Asc, ok: true},
		{name: "desc", input: "desc", want: Desc, ok: true},
		{name: "upper case", input: "DESC", want: Desc, ok: true},
		{name: "mixed case", input: "Asc", want: Asc, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "garbage", input: "sideways", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseDirection(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSort_OrderClause(t *testing.T) {
	t.Parallel()

	asc := &Sort{Direction: Asc}
	assert.Equal(t, "sign_up_date ASC", asc.OrderClause("sign_up_date"))

	desc := &Sort{Direction: Desc}
	assert.Equal(t, "submission_date DESC", desc.OrderClause("submission_date"))
}

func TestUserFilter_Conditions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, UserFilter{}.Conditions())

	blocked := true
	deleted := false
	conds := UserFilter{IsBlocked: &blocked, IsDeleted: &deleted}.Conditions()
	assert.Equal(t, map[string]any{"is_blocked": true, "is_deleted": false}, conds)

	conds = UserFilter{IsDeleted: &deleted}.Conditions()
	assert.Equal(t, map[string]any{"is_deleted": false}, conds)
}

func TestReviewFilter_Conditions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ReviewFilter{}.Conditions())

	flagged := true
	rating := 0
	conds := ReviewFilter{IsFlagged: &flagged, Rating: &rating}.Conditions()
	assert.Equal(t, map[string]any{"is_flagged": true, "rating": 0}, conds)
}
