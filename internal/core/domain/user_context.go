package domain

// UserContext describes the viewer of a selection request. It is
// ephemeral input and never persisted. Every field is optional; a nil
// field means the dimension is unknown and scores zero.
type UserContext struct {
	Destination     *string
	PlaceID         *string
	TravelStartDate *string
	TravelEndDate   *string
	Gender          *string
	Age             *int
	TripTypes       []string
	Activities      []string
	TravelStyles    []string
}

// IsEmpty reports whether no targeting dimension is set at all, in
// which case every campaign scores zero.
func (u *UserContext) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.Destination == nil && u.PlaceID == nil &&
		u.TravelStartDate == nil && u.TravelEndDate == nil &&
		u.Gender == nil && u.Age == nil &&
		len(u.TripTypes) == 0 && len(u.Activities) == 0 && len(u.TravelStyles) == 0
}
