package model

// ConfirmationTokenGenerator issues opaque confirmation tokens.
type ConfirmationTokenGenerator interface {
	Generate() (string, error)
}

// PublisherTokenManager signs and verifies tokens that authorize publishing.
type PublisherTokenManager interface {
	GeneratePublisherToken(subject string) (string, error)
	ParsePublisherToken(token string) (string, error)
}
