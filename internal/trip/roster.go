package trip

// Participant is one member of the trip's group.
type Participant struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Role   string `yaml:"role" json:"role"`
	Status string `yaml:"status" json:"status"`
}

// Participant statuses.
const (
	StatusAccepted = "accepted"
	StatusPending  = "pending"
	StatusDeclined = "declined"
)

// Participant roles.
const (
	RoleOrganizer = "organizer"
	RoleMember    = "member"
)

// UnknownParticipant is returned by Roster.Lookup for ids that are not in
// the roster, so display code never renders an empty name.
var UnknownParticipant = Participant{Name: "Unknown traveler", Role: RoleMember, Status: StatusPending}

// Roster is the participant list with id lookup.
type Roster struct {
	order []Participant
	byID  map[string]Participant
}

// NewRoster builds a roster preserving the given order.
func NewRoster(participants []Participant) *Roster {
	r := &Roster{
		order: append([]Participant(nil), participants...),
		byID:  make(map[string]Participant, len(participants)),
	}
	for _, p := range participants {
		r.byID[p.ID] = p
	}
	return r
}

// All returns the participants in roster order.
func (r *Roster) All() []Participant {
	return r.order
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	return len(r.order)
}

// Lookup returns the participant for id, or UnknownParticipant if the id
// is not present.
func (r *Roster) Lookup(id string) Participant {
	if p, ok := r.byID[id]; ok {
		return p
	}
	return UnknownParticipant
}

// CountByStatus returns how many participants have the given status.
func (r *Roster) CountByStatus(status string) int {
	n := 0
	for _, p := range r.order {
		if p.Status == status {
			n++
		}
	}
	return n
}
