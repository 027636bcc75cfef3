package domain

// ServerEventType tags push-channel messages. The wire protocol today defines
// a single payload; modeling it as a tagged variant leaves room to add more
// without changing the subscription contract.
type ServerEventType string

const (
	// EventBalanceUpdated signals that the user's ledger balance changed and
	// the client should refresh account state and transactions.
	EventBalanceUpdated ServerEventType = "update_balance"

	// EventUnknown is any payload the client does not recognize. It is logged
	// and otherwise ignored.
	EventUnknown ServerEventType = "unknown"
)

// ServerEvent is one typed message received on the push channel.
type ServerEvent struct {
	Type ServerEventType
	Raw  string
}

// ParseServerEvent maps a raw push-channel payload to a typed event.
func ParseServerEvent(raw string) ServerEvent {
	switch raw {
	case string(EventBalanceUpdated):
		return ServerEvent{Type: EventBalanceUpdated, Raw: raw}
	default:
		return ServerEvent{Type: EventUnknown, Raw: raw}
	}
}
