package identity

import "time"

// SignInInput contains parameters for an anonymous sign-in
type SignInInput struct {
	// PreviousSubject is the subject persisted by the client, if any
	PreviousSubject string
}

// SignInOutput contains the result of an anonymous sign-in
type SignInOutput struct {
	Subject string

	// Restored is true when PreviousSubject was still registered and reused
	Restored bool
}

// SignOutInput contains parameters for signing out
type SignOutInput struct {
	Subject string
}

// subjectRecord is what the registry stores per subject
type subjectRecord struct {
	Subject    string    `json:"subject"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSignIn time.Time `json:"lastSignIn"`
}
