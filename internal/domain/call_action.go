package domain

// CallAction is a single intended on-chain invocation. Target and payload are
// opaque strings; consumers decide how to validate or decode them.
type CallAction struct {
	target  string
	payload string
}

func NewCallAction(target, payload string) CallAction {
	return CallAction{target: target, payload: payload}
}

func (a CallAction) Target() string {
	return a.target
}

func (a CallAction) Payload() string {
	return a.payload
}

// CallScript is an ordered list of call actions.
type CallScript []CallAction
