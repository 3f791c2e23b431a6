package types

type EventType string

func (e EventType) String() string {
	return string(e)
}

const (
	EventDeposit  EventType = "DEPOSIT"
	EventWithdraw EventType = "WITHDRAW"
	EventClaim    EventType = "CLAIM"
)
