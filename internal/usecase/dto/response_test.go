package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/usecase/dto"
)

func TestNewResolveResponse_DirectMatch(t *testing.T) {
	result := &domain.MatchResult{
		Type:        domain.MatchedTypeDirectMatch,
		MatchedCity: "jaisalmer",
		Properties: []domain.NearbyProperty{
			{Property: domain.Property{ID: 7, Name: "Moustache Jaisalmer", City: "Jaisalmer", Lat: 26.9, Lon: 70.9}},
		},
		Attempted: []string{"jaisalmer"},
		Source:    domain.CorrectionSourceVocabulary,
	}

	data, err := json.Marshal(dto.NewResolveResponse(result))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"matched_type": "direct_match",
		"matched_city": "jaisalmer",
		"nearest_properties": [{"property": "Moustache Jaisalmer", "distance_km": 0}]
	}`, string(data))
}

func TestNewResolveResponse_NoMatchKeepsEmptyList(t *testing.T) {
	result := &domain.MatchResult{
		Type:        domain.MatchedTypeNoMatch,
		MatchedCity: "coimbatore",
		Properties:  []domain.NearbyProperty{},
		Message:     "No properties found within 50 km radius.",
	}

	data, err := json.Marshal(dto.NewResolveResponse(result))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"matched_type": "no_match",
		"matched_city": "coimbatore",
		"nearest_properties": [],
		"message": "No properties found within 50 km radius."
	}`, string(data))
}

func TestNewResolveResponse_UnrecognizedOmitsList(t *testing.T) {
	result := &domain.MatchResult{
		Type:    domain.MatchedTypeUnrecognized,
		Message: "Could not recognize or correct the input location.",
		Source:  domain.CorrectionSourcePassthrough,
	}

	data, err := json.Marshal(dto.NewResolveResponse(result))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"matched_type": "unrecognized",
		"message": "Could not recognize or correct the input location."
	}`, string(data))
}
