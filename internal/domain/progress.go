package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ProgressEntry is the user-authored note attached to one
// (week, class, subject, session) combination.
type ProgressEntry struct {
	Content string `json:"content"`
	Memo    string `json:"memo"`
}

// Blank reports whether both fields are empty after trimming. A blank entry
// must not exist in the progress store; setting one deletes the key instead.
func (e ProgressEntry) Blank() bool {
	return strings.TrimSpace(e.Content) == "" && strings.TrimSpace(e.Memo) == ""
}

// ProgressKey identifies one progress entry. It is derived from a week's
// schedule and recomputable at any time; the string form exists only at the
// persistence boundary.
type ProgressKey struct {
	WeekID  int
	ClassID string
	Subject string
	Session int
}

// String encodes the key as w<week>-c<class>-sub<subject>-s<session>.
func (k ProgressKey) String() string {
	return fmt.Sprintf("w%d-c%s-sub%s-s%d", k.WeekID, k.ClassID, k.Subject, k.Session)
}

// ClassID and Subject may themselves contain hyphens, so the class capture is
// non-greedy up to the "-sub" marker and the subject runs to the final
// "-s<digits>" suffix.
var progressKeyPattern = regexp.MustCompile(`^w(\d+)-c(.+?)-sub(.+)-s(\d+)$`)

// ParseProgressKey decodes a stored key string. Keys that do not match the
// shape are foreign or legacy data; callers skip them rather than delete
// them, except during re-keying where unmappable entries are dropped.
func ParseProgressKey(s string) (ProgressKey, error) {
	m := progressKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return ProgressKey{}, fmt.Errorf("progress key %q: unrecognized format", s)
	}
	weekID, err := strconv.Atoi(m[1])
	if err != nil {
		return ProgressKey{}, fmt.Errorf("progress key %q: week id: %w", s, err)
	}
	session, err := strconv.Atoi(m[4])
	if err != nil {
		return ProgressKey{}, fmt.Errorf("progress key %q: session: %w", s, err)
	}
	return ProgressKey{WeekID: weekID, ClassID: m[2], Subject: m[3], Session: session}, nil
}

// ProgressMap is the progress store: key string -> entry. Early versions
// persisted bare content strings as values; UnmarshalJSON upgrades those to
// entries with an empty memo.
type ProgressMap map[string]ProgressEntry

func (p *ProgressMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ProgressMap, len(raw))
	for key, val := range raw {
		var s string
		if err := json.Unmarshal(val, &s); err == nil {
			out[key] = ProgressEntry{Content: s}
			continue
		}
		var e ProgressEntry
		if err := json.Unmarshal(val, &e); err != nil {
			return fmt.Errorf("progress entry %q: %w", key, err)
		}
		out[key] = e
	}
	*p = out
	return nil
}
