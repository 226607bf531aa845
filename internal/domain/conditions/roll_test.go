package conditions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/dice"
	mockdice "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/dice/mock"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/conditions"
)

func TestRollForInjury_BelowThresholdSkipsRoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	// no Roll expectation: light hits never reach the die

	tier, forced, err := conditions.RollForInjury(roller, 9)
	require.NoError(t, err)
	assert.False(t, forced)
	assert.Empty(t, tier)
}

func TestRollForInjury_ModerateDamageIsMinor(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	tier, forced, err := conditions.RollForInjury(roller, 15)
	require.NoError(t, err)
	assert.True(t, forced)
	assert.Equal(t, conditions.MinorInjury, tier)
}

func TestRollForInjury_SevereDamageGradesByDie(t *testing.T) {
	tests := []struct {
		name string
		roll int
		want conditions.ConditionType
	}{
		{name: "low roll is minor", roll: 2, want: conditions.MinorInjury},
		{name: "mid roll is serious", roll: 5, want: conditions.SeriousInjury},
		{name: "six is critical", roll: 6, want: conditions.CriticalInjury},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			roller := mockdice.NewMockRoller(ctrl)
			roller.EXPECT().Roll(1, 6, 0).Return(&dice.RollResult{Total: tt.roll, Rolls: []int{tt.roll}}, nil)

			tier, forced, err := conditions.RollForInjury(roller, 24)
			require.NoError(t, err)
			assert.True(t, forced)
			assert.Equal(t, tt.want, tier)
		})
	}
}
