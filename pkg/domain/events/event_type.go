package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeUserRegistered    EventType = "User.Registered"
	EventTypeDepositCompleted  EventType = "Deposit.Completed"
	EventTypeWithdrawCompleted EventType = "Withdraw.Completed"
	EventTypeOperationRejected EventType = "Operation.Rejected"
)

// All lists every event type published by the services.
func All() []EventType {
	return []EventType{
		EventTypeUserRegistered,
		EventTypeDepositCompleted,
		EventTypeWithdrawCompleted,
		EventTypeOperationRejected,
	}
}

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is implemented by everything published on the event bus.
type Event interface {
	Type() EventType
}
