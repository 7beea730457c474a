package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/pkg/e"
)

func TestParseRelationType(t *testing.T) {
	tests := []struct {
		in      string
		want    RelationType
		wantErr bool
	}{
		{"", Both, false},
		{"cross-sell", CrossSell, false},
		{"up-sell", UpSell, false},
		{"both", Both, false},
		{"upsell", "", true},
		{"CROSS-SELL", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRelationType(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, e.ErrInvalidRelationType, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNewProductRelationship_StrengthDefault(t *testing.T) {
	rel := NewProductRelationship(1, 2, CrossSell, 0)
	require.Equal(t, int32(1), rel.Strength)

	rel = NewProductRelationship(1, 2, UpSell, 7)
	require.Equal(t, int32(7), rel.Strength)
}
