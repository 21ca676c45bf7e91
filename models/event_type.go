package models

import "strings"

// EventType is the closed set of promotion kinds.
// Values are the Korean display strings stored in the database.
type EventType string

const (
	EventTypeDiscount  EventType = "할인"
	EventTypeEvent     EventType = "행사"
	EventTypePopup     EventType = "팝업"
	EventTypeGift      EventType = "증정"
	EventTypeReward    EventType = "리워드"
	EventTypeTimeDeal  EventType = "타임딜"
	EventTypeExclusive EventType = "전용 혜택"
)

var eventTypes = map[EventType]bool{
	EventTypeDiscount:  true,
	EventTypeEvent:     true,
	EventTypePopup:     true,
	EventTypeGift:      true,
	EventTypeReward:    true,
	EventTypeTimeDeal:  true,
	EventTypeExclusive: true,
}

// typeRule maps keyword hints found in free-text type columns to an enum
// value. Rules are ordered; the first rule with a matching keyword wins.
type typeRule struct {
	keywords []string
	result   EventType
}

var eventTypeRules = []typeRule{
	{keywords: []string{"행사"}, result: EventTypeEvent},
	{keywords: []string{"팝업", "popup"}, result: EventTypePopup},
	{keywords: []string{"증정", "사은품", "gift"}, result: EventTypeGift},
	{keywords: []string{"리워드", "포인트"}, result: EventTypeReward},
	{keywords: []string{"타임딜", "타임 딜", "타임세일"}, result: EventTypeTimeDeal},
	{keywords: []string{"전용", "멤버십", "exclusive"}, result: EventTypeExclusive},
}

// NormalizeEventType canonicalizes a raw type column. Exact enum values pass
// through; anything else is lower-cased and tested against the ordered
// keyword rules. Unmatched input falls back to DISCOUNT. Never fails.
func NormalizeEventType(raw string) EventType {
	value := strings.TrimSpace(raw)
	if eventTypes[EventType(value)] {
		return EventType(value)
	}

	lower := strings.ToLower(value)
	for _, rule := range eventTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.result
			}
		}
	}
	return EventTypeDiscount
}

func (t EventType) String() string { return string(t) }
