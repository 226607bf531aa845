package rest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/conditions"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/currency"
	restdomain "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/rest"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/characters"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/mocks"
)

type RestServiceSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	fixedTime time.Time
	repo      characters.Repository
	service   Service
}

func (s *RestServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.fixedTime = time.Date(2024, 11, 3, 22, 0, 0, 0, time.UTC)

	mockTime := mocks.NewMockTimeProvider(s.ctrl)
	mockTime.EXPECT().Now().Return(s.fixedTime).AnyTimes()

	s.repo = characters.NewInMemoryRepository()
	s.service = NewService(&ServiceConfig{
		Repository:   s.repo,
		TimeProvider: mockTime,
	})
}

func (s *RestServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// seedCharacter stores a fresh character and returns it
func (s *RestServiceSuite) seedCharacter(modify func(*character.Character)) *character.Character {
	char := character.New("char-1", "owner-1", "campaign-1", "Brandis")
	char.Race = "Human"
	char.Class = "Fighter"
	char.Level = 5
	char.HP = character.HPResource{Current: 18, Max: 30}
	char.HitDice = character.HitDice{DiceType: 10, Max: 5, Remaining: 5}
	char.SuperiorityDice = character.SuperiorityDice{Current: 1, Max: 4}
	char.Rations = 5
	char.Currency = currency.Currency{GP: 5}

	if modify != nil {
		modify(char)
	}

	s.Require().NoError(s.repo.Create(s.ctx, char))
	return char
}

func (s *RestServiceSuite) reload(id string) *character.Character {
	char, err := s.repo.Get(s.ctx, id)
	s.Require().NoError(err)
	return char
}

func (s *RestServiceSuite) TestShortRestStandardOnly() {
	s.seedCharacter(nil)

	effects, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType: restdomain.ShortRest,
	})

	s.Require().NoError(err)
	s.Equal([]string{"patch-wounds-short"}, effects.AppliedOptionIDs)
	s.True(effects.SuperiorityRestored)
	s.Zero(effects.HitDiceRecovered)
	s.Zero(effects.InjuryHealing, "no active injury, healing lapses")

	char := s.reload("char-1")
	s.Equal(4, char.SuperiorityDice.Current)
	s.Require().NotNil(char.RestHistory.LastShortRest)
	s.Equal(s.fixedTime, char.RestHistory.LastShortRest.Timestamp)
}

func (s *RestServiceSuite) TestShortRestSelectionLimit() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType:          restdomain.ShortRest,
		SelectedOptionIDs: []string{"prepare-a-snack", "catch-your-breath"},
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestLongRestAllowsTwoSelections() {
	s.seedCharacter(nil)

	effects, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType:          restdomain.LongRest,
		Location:          restdomain.Wilderness,
		SelectedOptionIDs: []string{"tell-a-tale", "hearty-meal"},
		RationCounts:      map[string]int{"hearty-meal": 2},
	})

	s.Require().NoError(err)
	s.True(effects.HeroicInspiration)
	s.Equal(4, effects.TempHP)
	s.Equal(2, effects.RationsSpent)

	char := s.reload("char-1")
	s.Equal(3, char.Rations)
	s.Equal(4, char.HP.Temporary)
	s.True(char.RestHistory.HeroicInspirationGainedToday)
}

func (s *RestServiceSuite) TestUnknownOptionRejected() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType:          restdomain.ShortRest,
		SelectedOptionIDs: []string{"bottled-lightning"},
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestOptionFromWrongRestType() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType:          restdomain.ShortRest,
		SelectedOptionIDs: []string{"hearty-meal"},
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestLongRestRequiresLocation() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType: restdomain.LongRest,
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestSettlementQualityRoom() {
	s.seedCharacter(func(c *character.Character) {
		c.Exhaustion.CurrentLevel = 4
		c.HitDice.Remaining = 1
	})

	effects, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType: restdomain.LongRest,
		Location: restdomain.Settlement,
		RoomType: restdomain.RoomQuality,
	})

	s.Require().NoError(err)
	s.Equal(-3, effects.ExhaustionDelta)
	s.Equal(300, effects.RoomCostCP)
	s.Equal(2, effects.HitDiceRecovered)

	char := s.reload("char-1")
	s.Equal(1, char.Exhaustion.CurrentLevel)
	s.Equal(200, char.Currency.TotalCopper(), "5 gp purse minus the 3 gp room")
	s.Equal(3, char.HitDice.Remaining)
}

func (s *RestServiceSuite) TestSettlementRequiresRoom() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType: restdomain.LongRest,
		Location: restdomain.Settlement,
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestSettlementRoomUnaffordable() {
	s.seedCharacter(nil) // 5 gp, luxury costs 6

	_, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType: restdomain.LongRest,
		Location: restdomain.Settlement,
		RoomType: restdomain.RoomLuxury,
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))

	char := s.reload("char-1")
	s.Equal(500, char.Currency.TotalCopper(), "rejected rest must not touch the purse")
	s.Nil(char.RestHistory.LastLongRest)
}

func (s *RestServiceSuite) TestHeartyMealRequiresRationCount() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType:          restdomain.LongRest,
		Location:          restdomain.Wilderness,
		SelectedOptionIDs: []string{"hearty-meal"},
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestInsufficientRations() {
	s.seedCharacter(func(c *character.Character) {
		c.Rations = 0
	})

	_, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType:          restdomain.ShortRest,
		SelectedOptionIDs: []string{"prepare-a-snack"},
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))

	char := s.reload("char-1")
	s.Zero(char.HP.Temporary)
	s.Nil(char.RestHistory.LastShortRest)
}

func (s *RestServiceSuite) TestHealsHighestInjuryByDefault() {
	s.seedCharacter(func(c *character.Character) {
		s.Require().NoError(c.Conditions.ActivateInjury(conditions.MinorInjury, "", s.fixedTime))
		s.Require().NoError(c.Conditions.ActivateInjury(conditions.SeriousInjury, conditions.LocationLimb, s.fixedTime))
	})

	effects, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType: restdomain.LongRest,
		Location: restdomain.Wilderness,
	})

	s.Require().NoError(err)
	s.Equal(conditions.SeriousInjury, effects.HealedInjury)
	s.Equal(2, effects.InjuryHealing)

	char := s.reload("char-1")
	s.Equal(2, char.Conditions.Injuries[conditions.SeriousInjury].HP)
	s.Equal(1, char.Conditions.Injuries[conditions.MinorInjury].DaysSinceRest,
		"the untreated injury ages by a day")
}

func (s *RestServiceSuite) TestTargetInjuryOverridesDefault() {
	s.seedCharacter(func(c *character.Character) {
		s.Require().NoError(c.Conditions.ActivateInjury(conditions.MinorInjury, "", s.fixedTime))
		s.Require().NoError(c.Conditions.ActivateInjury(conditions.SeriousInjury, conditions.LocationLimb, s.fixedTime))
	})

	effects, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType:     restdomain.LongRest,
		Location:     restdomain.Wilderness,
		TargetInjury: conditions.MinorInjury,
	})

	s.Require().NoError(err)
	s.Equal(conditions.MinorInjury, effects.HealedInjury)

	char := s.reload("char-1")
	s.False(char.Conditions.Has(conditions.MinorInjury), "2 healing clears a fresh minor injury")
	s.True(char.Conditions.Has(conditions.SeriousInjury))
}

func (s *RestServiceSuite) TestTargetInjuryMustBeActive() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType:     restdomain.LongRest,
		Location:     restdomain.Wilderness,
		TargetInjury: conditions.CriticalInjury,
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestUntreatedInjuryTurnsInfected() {
	s.seedCharacter(func(c *character.Character) {
		s.Require().NoError(c.Conditions.ActivateInjury(conditions.MinorInjury, "", s.fixedTime))
		s.Require().NoError(c.Conditions.ActivateInjury(conditions.CriticalInjury, conditions.LocationTorso, s.fixedTime))
	})

	// Patch Wounds always treats the critical injury, so the minor one
	// goes untreated for three straight long rests
	input := &ResolveInput{RestType: restdomain.LongRest, Location: restdomain.Wilderness}
	for i := 0; i < 3; i++ {
		_, err := s.service.Execute(s.ctx, "char-1", input)
		s.Require().NoError(err)
	}

	char := s.reload("char-1")
	s.False(char.Conditions.Has(conditions.CriticalInjury), "6 hp treated at 2 per rest")
	s.True(char.Conditions.Has(conditions.MinorInjury))
	s.True(char.Conditions.Has(conditions.Infection))
}

func (s *RestServiceSuite) TestWildernessStreak() {
	s.seedCharacter(func(c *character.Character) {
		c.Exhaustion.CurrentLevel = 3
		c.RestHistory.ConsecutiveWildernessRests = 6
	})

	wilderness := &ResolveInput{RestType: restdomain.LongRest, Location: restdomain.Wilderness}

	// Seventh consecutive wilderness rest: the recovery and the streak
	// penalty cancel out, and further recovery is blocked
	effects, err := s.service.Execute(s.ctx, "char-1", wilderness)
	s.Require().NoError(err)
	s.Equal(0, effects.ExhaustionDelta)
	s.True(effects.BlockWildernessRecovery)

	char := s.reload("char-1")
	s.Equal(3, char.Exhaustion.CurrentLevel)
	s.Equal(7, char.RestHistory.ConsecutiveWildernessRests)
	s.True(char.RestHistory.WildernessExhaustionBlocked)

	// Once blocked, wilderness rests neither recover nor penalize again
	effects, err = s.service.Execute(s.ctx, "char-1", wilderness)
	s.Require().NoError(err)
	s.Equal(0, effects.ExhaustionDelta)

	char = s.reload("char-1")
	s.Equal(3, char.Exhaustion.CurrentLevel)
	s.Equal(8, char.RestHistory.ConsecutiveWildernessRests)

	// A settlement rest clears the streak and the block
	_, err = s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType: restdomain.LongRest,
		Location: restdomain.Settlement,
		RoomType: restdomain.RoomFree,
	})
	s.Require().NoError(err)

	char = s.reload("char-1")
	s.Equal(2, char.Exhaustion.CurrentLevel)
	s.Equal(0, char.RestHistory.ConsecutiveWildernessRests)
	s.False(char.RestHistory.WildernessExhaustionBlocked)

	// Back in the wilderness, recovery works again
	effects, err = s.service.Execute(s.ctx, "char-1", wilderness)
	s.Require().NoError(err)
	s.Equal(-1, effects.ExhaustionDelta)
}

func (s *RestServiceSuite) TestProjectWorkOnExistingProject() {
	s.seedCharacter(func(c *character.Character) {
		c.Projects = []*character.Project{
			{ID: "proj-1", Name: "Forge a Blade", TotalWorkUnits: 10},
		}
	})

	effects, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType:          restdomain.LongRest,
		Location:          restdomain.Wilderness,
		SelectedOptionIDs: []string{"work-on-project-long"},
		ProjectID:         "proj-1",
	})

	s.Require().NoError(err)
	s.Equal(2, effects.ProjectWork)

	char := s.reload("char-1")
	project, ok := char.FindProject("proj-1")
	s.Require().True(ok)
	s.Equal(2, project.CompletedWorkUnits)
}

func (s *RestServiceSuite) TestElfWorksFasterOvernight() {
	char := s.seedCharacter(func(c *character.Character) {
		c.Race = "Elf"
		c.Projects = []*character.Project{
			{ID: "proj-1", Name: "Transcribe a Grimoire", TotalWorkUnits: 10},
		}
	})

	effects, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType:          restdomain.LongRest,
		Location:          restdomain.Wilderness,
		SelectedOptionIDs: []string{"work-on-project-long"},
		ProjectID:         "proj-1",
	})

	s.Require().NoError(err)
	s.Equal(3, effects.ProjectWork)
}

func (s *RestServiceSuite) TestProjectWorkStartsNewProject() {
	s.seedCharacter(nil)

	_, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType:          restdomain.ShortRest,
		SelectedOptionIDs: []string{"work-on-project-short"},
		NewProject:        &character.Project{Name: "Map the Valley", TotalWorkUnits: 5},
	})

	s.Require().NoError(err)

	char := s.reload("char-1")
	s.Require().Len(char.Projects, 1)
	s.NotEmpty(char.Projects[0].ID)
	s.Equal(1, char.Projects[0].CompletedWorkUnits)
}

func (s *RestServiceSuite) TestProjectWorkNeedsAProject() {
	char := s.seedCharacter(nil)

	_, err := s.service.Resolve(s.ctx, char, &ResolveInput{
		RestType:          restdomain.ShortRest,
		SelectedOptionIDs: []string{"work-on-project-short"},
	})

	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *RestServiceSuite) TestEligibleOptionsRespectRestrictions() {
	char := s.seedCharacter(func(c *character.Character) {
		c.Race = "Elf"
		c.Class = "Fighter"
	})

	ids := make(map[string]bool)
	for _, choice := range s.service.EligibleOptions(char, restdomain.LongRest) {
		ids[choice.Option.ID] = true
	}

	s.True(ids["elven-trance"])
	s.True(ids["hearty-meal"])
	s.False(ids["dwarven-constitution"])
	s.False(ids["bard-song-of-rest"])
}

func (s *RestServiceSuite) TestEligibleOptionsFlagRecentlyUsed() {
	s.seedCharacter(nil)

	_, err := s.service.Execute(s.ctx, "char-1", &ResolveInput{
		RestType:          restdomain.LongRest,
		Location:          restdomain.Wilderness,
		SelectedOptionIDs: []string{"tell-a-tale"},
	})
	s.Require().NoError(err)

	char := s.reload("char-1")
	for _, choice := range s.service.EligibleOptions(char, restdomain.LongRest) {
		if choice.Option.ID == "tell-a-tale" {
			s.True(choice.RecentlyUsed)
		} else {
			s.False(choice.RecentlyUsed, choice.Option.ID)
		}
	}
}

func (s *RestServiceSuite) TestDefaultSelections() {
	char := s.seedCharacter(func(c *character.Character) {
		c.RestHistory.LastLongRest = &character.RestRecord{
			Timestamp:       s.fixedTime,
			ChosenOptionIDs: []string{"tell-a-tale", "elven-trance", "hearty-meal"},
		}
	})

	// elven-trance is no longer eligible for a Human, so it drops out and
	// the remaining two fit the limit
	defaults := s.service.DefaultSelections(char, restdomain.LongRest)
	s.Equal([]string{"tell-a-tale", "hearty-meal"}, defaults)
}

func (s *RestServiceSuite) TestDefaultSelectionsEmptyWithoutHistory() {
	char := s.seedCharacter(nil)
	s.Empty(s.service.DefaultSelections(char, restdomain.LongRest))
}

func TestRestServiceSuite(t *testing.T) {
	suite.Run(t, new(RestServiceSuite))
}
