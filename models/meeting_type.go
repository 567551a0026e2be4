package models

// MeetingType identifies one of the fixed meeting offerings.
type MeetingType string

const (
	MeetingDiscovery    MeetingType = "discovery"
	MeetingStrategy     MeetingType = "strategy"
	MeetingConsultation MeetingType = "consultation"
)

// MeetingTypeOption describes a bookable meeting type as shown to visitors.
type MeetingTypeOption struct {
	ID          MeetingType `json:"id"`
	Name        string      `json:"name"`
	Duration    int         `json:"duration"` // minutes
	Description string      `json:"description"`
}

// MeetingTypes is the fixed catalogue of bookable meeting types.
var MeetingTypes = []MeetingTypeOption{
	{
		ID:          MeetingDiscovery,
		Name:        "Free Discovery Call",
		Duration:    15,
		Description: "A quick 15-minute call to discuss your needs and see how we can help.",
	},
	{
		ID:          MeetingStrategy,
		Name:        "Growth Strategy Session",
		Duration:    30,
		Description: "A comprehensive 30-minute session to dive deep into your growth strategy.",
	},
	{
		ID:          MeetingConsultation,
		Name:        "Service Consultation",
		Duration:    30,
		Description: "A 30-minute consultation to explore our services and find the best fit for you.",
	},
}

// MeetingTypeByID looks up a meeting type option by its identifier.
func MeetingTypeByID(id MeetingType) (MeetingTypeOption, bool) {
	for _, mt := range MeetingTypes {
		if mt.ID == id {
			return mt, true
		}
	}
	return MeetingTypeOption{}, false
}
