package rest

// The catalog is read-only reference data. Standard options apply
// automatically and never count against the selection limit; custom
// options are the generally available selectable benefits; race and
// class options appear only for eligible characters.
var catalog = []Option{
	// Standard, auto-applied
	{
		ID:          "patch-wounds-short",
		Name:        "Patch Wounds",
		Description: "Tend your worst injury during the break.",
		Category:    CategoryStandard,
		RestType:    ShortRest,
		Effect:      &Effect{Type: EffectHealInjury, Value: 1},
	},
	{
		ID:          "patch-wounds-long",
		Name:        "Patch Wounds",
		Description: "Properly dress and treat an injury overnight.",
		Category:    CategoryStandard,
		RestType:    LongRest,
		Effect:      &Effect{Type: EffectHealInjury, Value: 2},
	},

	// Selectable, short rest
	{
		ID:          "prepare-a-snack",
		Name:        "Prepare a Snack",
		Description: "Spend a ration on a quick meal for a few temporary hit points.",
		Category:    CategoryCustom,
		RestType:    ShortRest,
		Effect:      &Effect{Type: EffectTempHP, Value: 2, RequiresRations: 1},
	},
	{
		ID:          "catch-your-breath",
		Name:        "Catch Your Breath",
		Description: "Settle your nerves and steel yourself for what comes next.",
		Category:    CategoryCustom,
		RestType:    ShortRest,
		Effect:      &Effect{Type: EffectTempHP, Value: 3},
	},
	{
		ID:          "work-on-project-short",
		Name:        "Work on a Project",
		Description: "Put spare hands to a craft or study during the break.",
		Category:    CategoryCustom,
		RestType:    ShortRest,
		Effect:      &Effect{Type: EffectProjectWork, Value: 1},
	},

	// Selectable, long rest
	{
		ID:          "hearty-meal",
		Name:        "Hearty Meal",
		Description: "Cook as many rations as you like; each one fortifies the party.",
		Category:    CategoryCustom,
		RestType:    LongRest,
		Effect:      &Effect{Type: EffectTempHP, Value: 2, RequiresRationPrompt: true},
	},
	{
		ID:          "tell-a-tale",
		Name:        "Tell a Tale",
		Description: "Recount a past triumph around the fire and inspire yourself.",
		Category:    CategoryCustom,
		RestType:    LongRest,
		Effect:      &Effect{Type: EffectHeroicInspiration},
	},
	{
		ID:          "work-on-project-long",
		Name:        "Work on a Project",
		Description: "Dedicate the evening to a craft or study.",
		Category:    CategoryCustom,
		RestType:    LongRest,
		Effect:      &Effect{Type: EffectProjectWork, Value: 2},
	},

	// Race options
	{
		ID:              "elven-trance",
		Name:            "Trance",
		Description:     "Meditate in the elven way, waking with renewed vigor.",
		Category:        CategoryRace,
		RestType:        LongRest,
		RaceRestriction: "Elf",
		Effect:          &Effect{Type: EffectTempHP, Value: 4},
	},
	{
		ID:              "dwarven-constitution",
		Name:            "Stonefast Constitution",
		Description:     "A dwarf's rest knits wounds faster than any salve.",
		Category:        CategoryRace,
		RestType:        LongRest,
		RaceRestriction: "Dwarf",
		Effect:          &Effect{Type: EffectHealInjury, Value: 1},
	},
	{
		ID:              "halfling-comfort",
		Name:            "Comforts of Home",
		Description:     "A proper second supper; costs a ration.",
		Category:        CategoryRace,
		RestType:        ShortRest,
		RaceRestriction: "Halfling",
		Effect:          &Effect{Type: EffectTempHP, Value: 3, RequiresRations: 1},
	},
	{
		ID:              "mixed-resilience",
		Name:            "Mixed Resilience",
		Description:     "Draw on both bloodlines at once.",
		Category:        CategoryRace,
		RestType:        LongRest,
		RaceRestriction: RaceMixed,
		Effect:          &Effect{Type: EffectTempHP, Value: 3},
	},

	// Class options
	{
		ID:               "fighter-drills",
		Name:             "Combat Drills",
		Description:      "Run through forms until they are instinct.",
		Category:         CategoryClass,
		RestType:         ShortRest,
		ClassRestriction: "Fighter",
		Effect:           &Effect{Type: EffectTempHP, Value: 2},
	},
	{
		ID:               "bard-song-of-rest",
		Name:             "Song of Rest",
		Description:      "Soothing music eases the whole camp's hurts.",
		Category:         CategoryClass,
		RestType:         LongRest,
		ClassRestriction: "Bard",
		Effect:           &Effect{Type: EffectHeroicInspiration},
	},
	{
		ID:               "multiclass-adaptability",
		Name:             "Adaptability",
		Description:      "A varied training pays off in camp as in combat.",
		Category:         CategoryClass,
		RestType:         LongRest,
		ClassRestriction: ClassMulticlass,
		Effect:           &Effect{Type: EffectTempHP, Value: 2},
	},
}

// StandardOptions returns the auto-applied options for a rest type.
// These are always in effect and never count against the selection limit.
func StandardOptions(restType Type) []Option {
	var opts []Option
	for _, opt := range catalog {
		if opt.Category == CategoryStandard && opt.RestType == restType {
			opts = append(opts, opt)
		}
	}
	return opts
}

// EligibleOptions returns every option the character may pick for a rest
// type: standard options plus race and class options matching either the
// primary or secondary race/class. A primary race of Mixed or class of
// Multiclass unlocks the matching restricted options.
func EligibleOptions(restType Type, race, class, secondaryRace, secondaryClass string) []Option {
	var opts []Option
	for _, opt := range catalog {
		if opt.RestType != restType {
			continue
		}
		switch opt.Category {
		case CategoryStandard, CategoryCustom:
			opts = append(opts, opt)
		case CategoryRace:
			if raceMatches(opt.RaceRestriction, race, secondaryRace) {
				opts = append(opts, opt)
			}
		case CategoryClass:
			if classMatches(opt.ClassRestriction, class, secondaryClass) {
				opts = append(opts, opt)
			}
		}
	}
	return opts
}

func raceMatches(restriction, race, secondaryRace string) bool {
	if restriction == "" {
		return true
	}
	if restriction == RaceMixed {
		return race == RaceMixed
	}
	return restriction == race || (secondaryRace != "" && restriction == secondaryRace)
}

func classMatches(restriction, class, secondaryClass string) bool {
	if restriction == "" {
		return true
	}
	if restriction == ClassMulticlass {
		return class == ClassMulticlass
	}
	return restriction == class || (secondaryClass != "" && restriction == secondaryClass)
}

// ByID resolves an option even when it is no longer in a character's
// eligible set, for settling stale selections
func ByID(id string) (Option, bool) {
	for _, opt := range catalog {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}
