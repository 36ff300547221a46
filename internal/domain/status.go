package domain

// OrderStatus values match the storefront's display strings, so they are kept
// verbatim rather than normalized.
type OrderStatus string

const (
	StatusPending       OrderStatus = "Pending"
	StatusAccepted      OrderStatus = "Accepted"
	StatusPacked        OrderStatus = "Packed"
	StatusOutOfDelivery OrderStatus = "Out for Delivery"
	StatusCompleted     OrderStatus = "Completed"
	StatusRejected      OrderStatus = "Rejected"
	StatusCancelled     OrderStatus = "Cancelled"
)

// Terminal reports whether no further action may move the order.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Action is a request to move an order through its lifecycle.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionPack     Action = "pack"
	ActionShip     Action = "ship"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// transitions is the closed table of legal (status, action) pairs. Cancel is
// special-cased in Next because it is legal from every non-terminal status.
var transitions = map[OrderStatus]map[Action]OrderStatus{
	StatusPending: {
		ActionAccept: StatusAccepted,
		ActionReject: StatusRejected,
	},
	StatusAccepted: {
		ActionPack: StatusPacked,
	},
	StatusPacked: {
		ActionShip: StatusOutOfDelivery,
	},
	StatusOutOfDelivery: {
		ActionComplete: StatusCompleted,
	},
}

// Next resolves the status an order moves to when action is applied in the
// current status. Illegal pairs return a TransitionError; callers must not
// assume the UI only ever offers legal actions.
func Next(current OrderStatus, action Action) (OrderStatus, error) {
	if action == ActionCancel {
		if current.Terminal() {
			return "", &TransitionError{Status: current, Action: action}
		}
		return StatusCancelled, nil
	}
	if next, ok := transitions[current][action]; ok {
		return next, nil
	}
	return "", &TransitionError{Status: current, Action: action}
}
