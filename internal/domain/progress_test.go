package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressKey_String_RoundTrip(t *testing.T) {
	keys := []ProgressKey{
		{WeekID: 1, ClassID: "3-5", Subject: "과학A", Session: 1},
		{WeekID: 12, ClassID: "관광경영과", Subject: "보충수업", Session: 3},
		{WeekID: 3, ClassID: "3-10", Subject: "과학", Session: 2},
	}
	for _, key := range keys {
		parsed, err := ParseProgressKey(key.String())
		require.NoError(t, err, key.String())
		assert.Equal(t, key, parsed)
	}
}

func TestParseProgressKey_HyphenatedClassAndSubject(t *testing.T) {
	// The class capture must stop at the first "-sub" marker and the subject
	// must keep everything up to the trailing "-s<digits>".
	key, err := ParseProgressKey("w3-c3-2-sub과학-실험-s4")
	require.NoError(t, err)

	assert.Equal(t, 3, key.WeekID)
	assert.Equal(t, "3-2", key.ClassID)
	assert.Equal(t, "과학-실험", key.Subject)
	assert.Equal(t, 4, key.Session)
}

func TestParseProgressKey_RejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"w1-c3-5",
		"c3-5-sub과학-s1",
		"w1-c3-5-sub과학-s",
		"wx-c3-5-sub과학-s1",
		"some-random-key",
	}
	for _, s := range malformed {
		_, err := ParseProgressKey(s)
		assert.Error(t, err, s)
	}
}

func TestProgressEntry_Blank(t *testing.T) {
	assert.True(t, ProgressEntry{}.Blank())
	assert.True(t, ProgressEntry{Content: "  ", Memo: "\t"}.Blank())
	assert.False(t, ProgressEntry{Content: "1단원"}.Blank())
	assert.False(t, ProgressEntry{Memo: "실험 준비물"}.Blank())
}

func TestProgressMap_UnmarshalJSON_UpgradesLegacyStrings(t *testing.T) {
	raw := `{
		"w1-c3-5-sub과학A-s1": "1단원 도입",
		"w1-c3-3-sub과학A-s1": {"content": "1단원 도입", "memo": "실험실 사용"}
	}`

	var progress ProgressMap
	require.NoError(t, json.Unmarshal([]byte(raw), &progress))

	assert.Equal(t, ProgressEntry{Content: "1단원 도입"}, progress["w1-c3-5-sub과학A-s1"])
	assert.Equal(t, ProgressEntry{Content: "1단원 도입", Memo: "실험실 사용"}, progress["w1-c3-3-sub과학A-s1"])
}

func TestProgressMap_UnmarshalJSON_RejectsNonObjectValues(t *testing.T) {
	var progress ProgressMap
	err := json.Unmarshal([]byte(`{"w1-c3-5-sub과학A-s1": 42}`), &progress)
	assert.Error(t, err)
}
