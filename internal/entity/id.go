package entity

import (
	"fmt"
	"math/rand"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID builds a locally-unique identifier in the form
// <prefix>_<unix-millis>_<9 random chars>. Collisions are possible in theory
// but the timestamp component makes them irrelevant at client scale.
func NewID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
