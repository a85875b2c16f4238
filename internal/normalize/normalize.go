// Package normalize reconciles the two payload shapes of the name
// generation service into one ordered result list.
package normalize

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/saikothasan/neno/internal/models"
)

// envelope is the warning-wrapped shape:
// {"warning": ..., "rawResponse": {"response": "<serialized array>"}}
type envelope struct {
	Warning     any `json:"warning"`
	RawResponse *struct {
		Response any `json:"response"`
	} `json:"rawResponse"`
}

// Decode resolves raw into its UpstreamResponse variant. A Direct payload
// is decoded eagerly; a Wrapped one keeps its raw string for Normalize.
func Decode(raw []byte) (models.UpstreamResponse, error) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := sonic.Unmarshal(trimmed, &env); err != nil {
			return models.UpstreamResponse{}, fmt.Errorf("%w: %v", models.ErrMalformedUpstream, err)
		}
		if truthy(env.Warning) {
			if env.RawResponse == nil {
				return models.UpstreamResponse{}, fmt.Errorf("%w: warning payload without rawResponse", models.ErrMalformedUpstream)
			}
			s, ok := env.RawResponse.Response.(string)
			if !ok {
				return models.UpstreamResponse{}, fmt.Errorf("%w: rawResponse.response is not a string", models.ErrMalformedUpstream)
			}
			return models.UpstreamResponse{Shape: models.ShapeWrapped, Raw: s}, nil
		}
	}

	var results []models.GenerationResult
	if err := sonic.Unmarshal(trimmed, &results); err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("%w: expected a result array: %v", models.ErrMalformedUpstream, err)
	}
	return models.UpstreamResponse{Shape: models.ShapeDirect, Results: results}, nil
}

// Normalize turns an upstream payload into results in upstream order. It
// does not filter, deduplicate or truncate, and items missing the fields
// kind expects are kept as they are: projecting fields by kind is up to
// the caller. On error no results are returned.
func Normalize(raw []byte, _ models.Kind) ([]models.GenerationResult, error) {
	resp, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return Resolve(resp)
}

// Resolve produces the result list for an already decoded payload.
func Resolve(resp models.UpstreamResponse) ([]models.GenerationResult, error) {
	results := resp.Results
	if resp.Shape == models.ShapeWrapped {
		results = nil
		if err := sonic.UnmarshalString(resp.Raw, &results); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrMalformedUpstream, err)
		}
	}

	if results == nil {
		results = []models.GenerationResult{}
	}
	return results, nil
}

// truthy follows the loose truthiness the upstream marker is checked with.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
