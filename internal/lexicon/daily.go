package lexicon

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyAnswer returns a deterministic answer for a calendar day using
// HMAC(salt, YYYY-MM-DD) % len(answers). Every process with the same salt
// and answer list agrees on the day's word.
func (l *Lexicon) DailyAnswer(date time.Time, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return l.answers[n%uint64(len(l.answers))]
}
