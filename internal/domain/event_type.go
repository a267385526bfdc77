package domain

type EventType string

const (
	EventTypeWedding      EventType = "WEDDING"
	EventTypeCorporate    EventType = "CORPORATE"
	EventTypeBirthday     EventType = "BIRTHDAY"
	EventTypeAnniversary  EventType = "ANNIVERSARY"
	EventTypeConference   EventType = "CONFERENCE"
	EventTypeConcert      EventType = "CONCERT"
	EventTypeFestival     EventType = "FESTIVAL"
	EventTypePrivateParty EventType = "PRIVATE_PARTY"
	EventTypeCultural     EventType = "CULTURAL"
	EventTypeReligious    EventType = "RELIGIOUS"
	EventTypeOther        EventType = "OTHER"
)

var eventTypes = map[EventType]struct{}{
	EventTypeWedding:      {},
	EventTypeCorporate:    {},
	EventTypeBirthday:     {},
	EventTypeAnniversary:  {},
	EventTypeConference:   {},
	EventTypeConcert:      {},
	EventTypeFestival:     {},
	EventTypePrivateParty: {},
	EventTypeCultural:     {},
	EventTypeReligious:    {},
	EventTypeOther:        {},
}

func ValidEventType(v string) bool {
	_, ok := eventTypes[EventType(v)]
	return ok
}
