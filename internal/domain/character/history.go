package character

import (
	"time"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/rest"
)

// WildernessStreakLimit is how many consecutive wilderness long rests a
// character can take before exhaustion catches up with them
const WildernessStreakLimit = 7

// RestRecord remembers one completed rest; the chosen option ids seed the
// default selection for the next rest of the same type
type RestRecord struct {
	Timestamp       time.Time     `json:"timestamp"`
	ChosenOptionIDs []string      `json:"chosen_option_ids,omitempty"`
	Location        rest.Location `json:"location,omitempty"`
	RoomType        rest.RoomType `json:"room_type,omitempty"`
}

// RestHistory tracks when a character last rested and the running
// wilderness streak that gates exhaustion recovery
type RestHistory struct {
	LastShortRest *RestRecord `json:"last_short_rest,omitempty"`
	LastLongRest  *RestRecord `json:"last_long_rest,omitempty"`

	HeroicInspirationGainedToday bool `json:"heroic_inspiration_gained_today"`

	ConsecutiveWildernessRests  int  `json:"consecutive_wilderness_rests"`
	WildernessExhaustionBlocked bool `json:"wilderness_exhaustion_blocked"`
}

// LastRest returns the record for the given rest type, if any
func (h *RestHistory) LastRest(restType rest.Type) *RestRecord {
	if restType == rest.LongRest {
		return h.LastLongRest
	}
	return h.LastShortRest
}

// Record stores a completed rest under its type
func (h *RestHistory) Record(restType rest.Type, record *RestRecord) {
	if restType == rest.LongRest {
		h.LastLongRest = record
		return
	}
	h.LastShortRest = record
}
