package models

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestGenerationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerationRequest
		wantErr string
	}{
		{
			name: "valid minimal",
			req:  GenerationRequest{Type: KindUsername, Count: intPtr(3), Platform: "twitter"},
		},
		{
			name: "valid with optional fields",
			req:  GenerationRequest{Type: KindBoth, Count: intPtr(10), Platform: "github", Theme: "tech", Purpose: "work"},
		},
		{
			name:    "missing type",
			req:     GenerationRequest{Count: intPtr(3), Platform: "twitter"},
			wantErr: "type is required",
		},
		{
			name:    "unknown type",
			req:     GenerationRequest{Type: "nickname", Count: intPtr(3), Platform: "twitter"},
			wantErr: "type must be one of [username name both]",
		},
		{
			name:    "missing platform",
			req:     GenerationRequest{Type: KindName, Count: intPtr(3)},
			wantErr: "platform is required",
		},
		{
			name:    "missing count",
			req:     GenerationRequest{Type: KindName, Platform: "twitter"},
			wantErr: "count is required",
		},
		{
			name:    "count too small",
			req:     GenerationRequest{Type: KindName, Count: intPtr(0), Platform: "twitter"},
			wantErr: "count must be at least 1",
		},
		{
			name:    "count too large",
			req:     GenerationRequest{Type: KindName, Count: intPtr(11), Platform: "twitter"},
			wantErr: "count must be at most 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerationRequest_ResolvePlatform(t *testing.T) {
	assert.Equal(t, "twitter", GenerationRequest{Platform: "twitter", CustomPlatform: "ignored"}.ResolvePlatform())
	assert.Equal(t, "bluesky", GenerationRequest{Platform: CustomPlatform, CustomPlatform: "  bluesky "}.ResolvePlatform())
	assert.Equal(t, CustomPlatform, GenerationRequest{Platform: CustomPlatform, CustomPlatform: "   "}.ResolvePlatform())
}

func TestKind(t *testing.T) {
	assert.True(t, KindBoth.Valid())
	assert.False(t, Kind("").Valid())
	assert.Equal(t, "Names & Usernames", KindBoth.Label())
	assert.Equal(t, "Usernames", KindUsername.Label())
	assert.Equal(t, "other", Kind("other").Label())
}

func TestGenerationResult_Projection(t *testing.T) {
	r := GenerationResult{Name: "Ava", Username: "ava99"}

	assert.Equal(t, "Ava (@ava99)", r.DisplayText(KindBoth))
	assert.Equal(t, "ava99", r.DisplayText(KindUsername))
	assert.Equal(t, "Ava", r.DisplayText(KindName))
	assert.Equal(t, "Check out this AI-generated username: @ava99 - Generated with NameCraft AI", r.ShareText(KindUsername))

	assert.True(t, r.HasFields(KindBoth))
	assert.False(t, GenerationResult{Name: "Ava"}.HasFields(KindBoth))
	assert.False(t, GenerationResult{Name: "Ava"}.HasFields(KindUsername))
	assert.True(t, GenerationResult{Name: "Ava"}.HasFields(KindName))
}

func TestStatusCodeAndKind(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   string
	}{
		{fmt.Errorf("%w: type is required", ErrValidation), http.StatusBadRequest, ErrorKindValidation},
		{ErrTimeout, http.StatusRequestTimeout, ErrorKindTimeout},
		{fmt.Errorf("%w: dial tcp: refused", ErrConnection), http.StatusInternalServerError, ErrorKindConnection},
		{&UpstreamError{StatusCode: http.StatusTooManyRequests}, http.StatusTooManyRequests, ErrorKindUpstream},
		{fmt.Errorf("wrap: %w", &UpstreamError{StatusCode: 503}), 503, ErrorKindUpstream},
		{ErrMalformedUpstream, http.StatusBadGateway, ErrorKindMalformedUpstream},
		{errors.New("boom"), http.StatusInternalServerError, ErrorKindInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusCode(tt.err), tt.err.Error())
		assert.Equal(t, tt.kind, ErrorKind(tt.err), tt.err.Error())
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: count is required", ErrValidation), "missing or invalid request parameters: count is required"},
		{ErrTimeout, "Request timed out. Please try again."},
		{fmt.Errorf("%w: dial tcp 10.0.0.1:443: refused", ErrConnection), "Failed to connect to name generation service"},
		{&UpstreamError{StatusCode: http.StatusTooManyRequests}, "API request failed with status 429"},
		{fmt.Errorf("%w: unexpected end of input", ErrMalformedUpstream), "There was an error parsing the API response."},
		{errors.New("redis: connection pool timeout"), "Failed to process request"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.err), tt.err.Error())
	}
}
