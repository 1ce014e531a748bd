package value

import (
	"fmt"

	"github.com/rs/xid"
)

// DealID is generated locally when a deal list is decoded. It is not an
// upstream identifier and only stays stable for one loaded list.
type DealID string

func NewDealID() DealID {
	return DealID(xid.New().String())
}

func ParseDealID(s string) (DealID, error) {
	id, err := xid.FromString(s)
	if err != nil {
		return "", fmt.Errorf("xid.FromString: %w", err)
	}

	return DealID(id.String()), nil
}

func (d DealID) String() string {
	return string(d)
}
