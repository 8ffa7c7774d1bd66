package domain

// Ad event types reported by clients.
const (
	EventImpression    = "impression"
	EventClick         = "click"
	EventVideoQuartile = "video_quartile"
)

// Quartiles are the valid video-progress checkpoints.
var Quartiles = []int{25, 50, 75, 100}

// ValidQuartile reports whether q is one of the four checkpoints.
func ValidQuartile(q int) bool {
	for _, v := range Quartiles {
		if q == v {
			return true
		}
	}
	return false
}

// AdEvent is one validated client-reported occurrence. Only its
// aggregated effect is ever persisted.
type AdEvent struct {
	Type        string
	CampaignID  string
	TimestampMs int64
	Quartile    int // set only for video_quartile events
}
