package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEventType(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected EventType
	}{
		{
			name:     "exact enum value passes through",
			raw:      "행사",
			expected: EventTypeEvent,
		},
		{
			name:     "exact enum with surrounding whitespace",
			raw:      "  타임딜  ",
			expected: EventTypeTimeDeal,
		},
		{
			name:     "free text containing 행사",
			raw:      "여름 행사 안내",
			expected: EventTypeEvent,
		},
		{
			name:     "popup keyword in korean",
			raw:      "공식 팝업 스토어",
			expected: EventTypePopup,
		},
		{
			name:     "popup keyword in english",
			raw:      "Summer POPUP",
			expected: EventTypePopup,
		},
		{
			name:     "gift via 사은품 synonym",
			raw:      "사은품 증정",
			expected: EventTypeGift,
		},
		{
			name:     "reward via 포인트 synonym",
			raw:      "포인트 적립 이벤트",
			expected: EventTypeReward,
		},
		{
			name:     "time deal with space",
			raw:      "타임 딜",
			expected: EventTypeTimeDeal,
		},
		{
			name:     "exclusive via english keyword",
			raw:      "멤버십 EXCLUSIVE",
			expected: EventTypeExclusive,
		},
		{
			name:     "unmatched text falls back to discount",
			raw:      "신상품 출시",
			expected: EventTypeDiscount,
		},
		{
			name:     "empty input falls back to discount",
			raw:      "",
			expected: EventTypeDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEventType(tt.raw))
		})
	}
}

func TestNormalizeEventTypeRuleOrder(t *testing.T) {
	// 행사 is tested before the gift keywords, so mixed free text resolves
	// to the earlier rule.
	assert.Equal(t, EventTypeEvent, NormalizeEventType("사은품 증정 행사"))
}
