package draft

import "fmt"

// ValidationError is returned before any network call when user input fails
// a local check (empty title, empty prompt).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// UserMessage returns the reason directly; validation reasons are written
// for the user.
func (e *ValidationError) UserMessage() string {
	return e.Reason
}

// FetchError wraps a transport or HTTP failure while refreshing the draft list.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching drafts: %v", e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

func (e *FetchError) UserMessage() string {
	return "Could not load drafts. Check the server and try again."
}

// SaveError wraps a transport or HTTP failure while creating or updating a draft.
type SaveError struct {
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving draft: %v", e.Cause)
}

func (e *SaveError) Unwrap() error { return e.Cause }

func (e *SaveError) UserMessage() string {
	return "Could not save the draft. Your changes are still here; try again."
}

// DeleteError wraps a transport or HTTP failure while deleting a draft.
type DeleteError struct {
	Cause error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("deleting draft: %v", e.Cause)
}

func (e *DeleteError) Unwrap() error { return e.Cause }

func (e *DeleteError) UserMessage() string {
	return "Could not delete the draft. Try again."
}

// GenerationError wraps a transport or HTTP failure from the generation service.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating text: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

func (e *GenerationError) UserMessage() string {
	return "AI generation failed. Your prompt is unchanged; try again."
}

// userFacing is implemented by every error in this package's taxonomy.
type userFacing interface {
	UserMessage() string
}

// UserMessage extracts the short user-facing text for err. Transport detail
// stays in the logs; unknown errors get a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if uf, ok := err.(userFacing); ok {
		return uf.UserMessage()
	}
	return "Something went wrong. Try again."
}
