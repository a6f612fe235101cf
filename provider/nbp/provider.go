package nbp

import (
	"time"

	"github.com/kantorfx/kantor/provider"
)

var _ provider.Observation = (*Observation)(nil)

// Observation is a single dated record decoded from an NBP response.
type Observation struct {
	date  time.Time
	value float64
}

func (o Observation) Date() time.Time {
	return o.date
}

func (o Observation) Value() float64 {
	return o.value
}
