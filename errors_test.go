package sqsconsumer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/stretchr/testify/assert"
)

func TestIsAuthenticationError(t *testing.T) {
	forbidden := awserr.NewRequestFailure(awserr.New("AccessDenied", "access denied", nil), 403, "req-1")
	unavailable := awserr.NewRequestFailure(awserr.New("ServiceUnavailable", "try again", nil), 503, "req-2")

	testCases := []struct {
		name string
		err  error
		auth bool
	}{
		{"403 status", forbidden, true},
		{"wrapped 403 status", fmt.Errorf("receive: %w", forbidden), true},
		{"transport error around a 403", transportError("receive message", forbidden), true},
		{"credentials error code", awserr.New(CredentialsErrorCode, "missing credentials in config", nil), true},
		{"no credential providers", awserr.New("NoCredentialProviders", "no valid providers in chain", nil), true},
		{"other status", unavailable, false},
		{"other code", awserr.New("RequestCanceled", "canceled", nil), false},
		{"plain error", errors.New("connection reset"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.auth, IsAuthenticationError(tc.err))
		})
	}
}

func TestTransportError(t *testing.T) {
	err := transportError("receive message", assert.AnError)

	assert.Equal(t, "receive message failed: "+assert.AnError.Error(), err.Error())
	assert.True(t, IsKind(err, KindTransport))
	assert.False(t, IsKind(err, KindProcessing))
	assert.True(t, errors.Is(err, assert.AnError))
}

func TestIsKindOnForeignError(t *testing.T) {
	assert.False(t, IsKind(assert.AnError, KindTransport))
	assert.False(t, IsKind(nil, KindConfig))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "config", KindConfig.String())
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "processing", KindProcessing.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
