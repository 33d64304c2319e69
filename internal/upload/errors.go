package upload

// RejectionError is a client-caused refusal to process an upload. It always
// carries a human-readable reason and maps to 415 at the transport layer.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}
