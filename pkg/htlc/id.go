package htlc

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// GenerateID derives a record identifier as hex(SHA-256(fields..., createdAt)).
// Each field is written as "<len>:<field>" so account ids containing any byte
// cannot shift content between fields. createdAt is rendered in Unix
// nanoseconds. Identical inputs produce identical ids.
func GenerateID(createdAt time.Time, fields ...string) string {
	h := sha256.New()
	write := func(f string) {
		h.Write([]byte(strconv.Itoa(len(f))))
		h.Write([]byte{':'})
		h.Write([]byte(f))
	}
	for _, f := range fields {
		write(f)
	}
	write(strconv.FormatInt(createdAt.UnixNano(), 10))
	return hex.EncodeToString(h.Sum(nil))
}
