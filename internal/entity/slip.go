package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const DefaultSlipTTL = 30 * 24 * time.Hour

// SharedSlip is a payment slip stored for link sharing.
type SharedSlip struct {
	ID        uuid.UUID     `json:"id"`
	Data      PaymentRecord `json:"data"`
	QRString  *string       `json:"qrString"` // nil when the slip was shared before it was complete
	CreatedAt time.Time     `json:"createdAt"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

func (s SharedSlip) Expired(at time.Time) bool {
	return at.After(s.ExpiresAt)
}

// MaxSlipPage bounds SlipFilter.Page so that the row offset stays in range.
const MaxSlipPage = 1_000_000

type SlipFilter struct {
	Page    uint64
	Limit   uint64
	OrderBy OrderByCol
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
