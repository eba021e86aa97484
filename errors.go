package sqsconsumer

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// ErrorKind tells apart the failures a Consumer can produce.
type ErrorKind int

const (
	// KindConfig is an invalid construction parameter. Only NewConsumer returns it.
	KindConfig ErrorKind = iota + 1
	// KindTransport is a failed receive or delete call against SQS.
	KindTransport
	// KindProcessing is a handler failure the consumer had to synthesize, such as a recovered panic.
	KindProcessing
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindProcessing:
		return "processing"
	}
	return "unknown"
}

// Error is the error type reported by a Consumer, either returned from NewConsumer or passed to OnError listeners.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or any error it wraps, is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

func configError(msg string) error {
	return &Error{Kind: KindConfig, Message: msg}
}

func transportError(op string, cause error) error {
	return &Error{Kind: KindTransport, Message: op + " failed: " + cause.Error(), Err: cause}
}

// CredentialsErrorCode is the awserr code marking a failure to load or use credentials.
const CredentialsErrorCode = "CredentialsError"

// noCredentialProvidersCode is what the SDK's default credential chain returns when nothing is configured.
const noCredentialProvidersCode = "NoCredentialProviders"

// IsAuthenticationError reports whether err is an authentication or authorization failure: an HTTP 403 from SQS
// or a credentials error raised by the SDK. Receive failures of this kind are retried after a backoff.
func IsAuthenticationError(err error) bool {
	var rf awserr.RequestFailure
	if errors.As(err, &rf) && rf.StatusCode() == 403 {
		return true
	}

	var ae awserr.Error
	if errors.As(err, &ae) {
		switch ae.Code() {
		case CredentialsErrorCode, noCredentialProvidersCode:
			return true
		}
	}
	return false
}
