// Package uid produces collision-resistant identifiers for items and lists.
package uid

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// New returns a unique identifier string. It never fails: when a random
// UUID cannot be generated the degraded timestamp+random form is used,
// which is not guaranteed unique but is good enough for a single local
// list.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%d-%06d", time.Now().UnixNano(), rand.Intn(1000000))
	}
	return id.String()
}
