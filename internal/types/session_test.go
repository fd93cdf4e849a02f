package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEdit(t *testing.T, body string) FieldEditRequest {
	t.Helper()
	var req FieldEditRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestFieldEditRequest_DecodeValue(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		section Section
		want    any
	}{
		{"personal field", `{"section":"personal","field":"firstName","value":"Ada"}`, SectionPersonal, "Ada"},
		{"current flag", `{"section":"experience","field":"current","index":0,"value":true}`, SectionExperience, true},
		{"skill entry", `{"section":"skills","index":1,"value":"Go"}`, SectionSkills, "Go"},
		{"whole skills", `{"section":"skills","value":["Go","SQL"]}`, SectionSkills, []string{"Go", "SQL"}},
		{"whole personal", `{"section":"personal","value":{"firstName":"Ada","email":"a@b.c"}}`, SectionPersonal, PersonalInfo{FirstName: "Ada", Email: "a@b.c"}},
		{"summary", `{"section":"summary","value":"Hello"}`, SectionSummary, "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decodeEdit(t, tt.body)
			got, err := req.DecodeValue(tt.section)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldEditRequest_DecodeValueTypeMismatch(t *testing.T) {
	req := decodeEdit(t, `{"section":"experience","field":"current","index":0,"value":"yes"}`)
	_, err := req.DecodeValue(SectionExperience)
	assert.Error(t, err)

	req = decodeEdit(t, `{"section":"summary","value":42}`)
	_, err = req.DecodeValue(SectionSummary)
	assert.Error(t, err)
}

func TestUpdateProfileRequest_Validation(t *testing.T) {
	assert.NoError(t, validator.New().Struct(UpdateProfileRequest{Name: "Ada"}))
	assert.Error(t, validator.New().Struct(UpdateProfileRequest{}))
}
