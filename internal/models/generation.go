package models

import (
	"fmt"
	"strings"
	"time"
)

// Kind is what the upstream is asked to generate.
type Kind string

const (
	KindUsername Kind = "username"
	KindName     Kind = "name"
	KindBoth     Kind = "both"
)

// CustomPlatform is the platform placeholder the UI sends when the user
// typed their own platform into CustomPlatform.
const CustomPlatform = "custom"

func (k Kind) Valid() bool {
	switch k {
	case KindUsername, KindName, KindBoth:
		return true
	}
	return false
}

// Label is the heading used when listing past generations.
func (k Kind) Label() string {
	switch k {
	case KindUsername:
		return "Usernames"
	case KindName:
		return "Names"
	case KindBoth:
		return "Names & Usernames"
	default:
		return string(k)
	}
}

// GenerationRequest represents request for generate endpoint
type GenerationRequest struct {
	Type     Kind   `json:"type" validate:"required,oneof=username name both" example:"both"`
	Count    *int   `json:"count" validate:"required,min=1,max=10" example:"3"`
	Platform string `json:"platform" validate:"required" example:"twitter"`

	// Used instead of Platform when Platform is "custom"
	CustomPlatform string `json:"customPlatform,omitempty" example:"bluesky"`
	Theme          string `json:"theme,omitempty" example:"tech"`
	Purpose        string `json:"purpose,omitempty" example:"personal brand"`
}

// ResolvePlatform returns the platform to send upstream.
func (r GenerationRequest) ResolvePlatform() string {
	if r.Platform == CustomPlatform {
		if custom := strings.TrimSpace(r.CustomPlatform); custom != "" {
			return custom
		}
	}
	return r.Platform
}

// GenerationResult is one generated item. Which fields are set depends on
// the requested Kind; upstream is not trusted to honour it.
type GenerationResult struct {
	Name     string `json:"name,omitempty" example:"Ava"`
	Username string `json:"username,omitempty" example:"ava99"`
}

// HasFields reports whether r carries every field kind asks for.
func (r GenerationResult) HasFields(kind Kind) bool {
	switch kind {
	case KindBoth:
		return r.Name != "" && r.Username != ""
	case KindUsername:
		return r.Username != ""
	case KindName:
		return r.Name != ""
	}
	return false
}

// DisplayText is the text copied to the clipboard for a single result.
func (r GenerationResult) DisplayText(kind Kind) string {
	switch kind {
	case KindBoth:
		return fmt.Sprintf("%s (@%s)", r.Name, r.Username)
	case KindUsername:
		return r.Username
	default:
		return r.Name
	}
}

func (r GenerationResult) ShareText(kind Kind) string {
	switch kind {
	case KindBoth:
		return fmt.Sprintf("Check out this AI-generated name: %s (@%s) - Generated with NameCraft AI", r.Name, r.Username)
	case KindUsername:
		return fmt.Sprintf("Check out this AI-generated username: @%s - Generated with NameCraft AI", r.Username)
	default:
		return fmt.Sprintf("Check out this AI-generated name: %s - Generated with NameCraft AI", r.Name)
	}
}

// UpstreamShape tags which variant of UpstreamResponse is populated.
type UpstreamShape int

const (
	// ShapeDirect means the upstream answered with the result array itself.
	ShapeDirect UpstreamShape = iota
	// ShapeWrapped means the upstream flagged a warning and put the array,
	// serialized, into rawResponse.response.
	ShapeWrapped
)

func (s UpstreamShape) String() string {
	if s == ShapeWrapped {
		return "wrapped"
	}
	return "direct"
}

// UpstreamResponse is Direct(Results) or Wrapped(Raw), chosen by Shape.
type UpstreamResponse struct {
	Shape   UpstreamShape
	Results []GenerationResult
	Raw     string
}

type GenerateResponse struct {
	Type     Kind               `json:"type" example:"both"`
	Platform string             `json:"platform" example:"twitter"`
	Count    int                `json:"count" example:"2"`
	Results  []GenerationResult `json:"results"`
}

// HistoryEntry is one past generation of a client.
type HistoryEntry struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
	Request   GenerationRequest  `json:"request"`
	Results   []GenerationResult `json:"results"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Request timed out. Please try again."`
	Kind  string `json:"kind,omitempty" example:"timeout"`
}
