package enrich

import "fmt"

// APICallError indicates the LLM request itself failed: network, auth,
// quota. The extraction ladder treats it like any strategy failure.
type APICallError struct {
	Model string
	Cause error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("LLM call to %s failed: %v", e.Model, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ResponseError indicates the model answered but the payload was unusable:
// malformed JSON or a structure that fails schema validation.
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unusable LLM response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("unusable LLM response: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
