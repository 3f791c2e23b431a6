// Package custody moves pooled value between participants and the ledger.
package custody

import (
	"context"
	"errors"

	sdkmath "cosmossdk.io/math"
)

// ErrTransferDeclined is returned when the custody side refuses a transfer.
// Nothing has moved in that case.
var ErrTransferDeclined = errors.New("transfer declined")

//go:generate mockery --name=Custody --output=../../../tests/mocks --outpkg=mocks --filename=mock_custody.go
type Custody interface {
	// TransferIn pulls amount from the participant into the pool.
	TransferIn(ctx context.Context, participant string, amount sdkmath.Uint) error
	// TransferOut pays amount from the pool to the participant.
	TransferOut(ctx context.Context, participant string, amount sdkmath.Uint) error
}
