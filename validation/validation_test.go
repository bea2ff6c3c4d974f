package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist/models"
)

func TestParseCreate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails []string
		want        models.CreateItemRequest
	}{
		{
			name: "name only gets defaults",
			body: `{"name":"Eggs"}`,
			want: models.CreateItemRequest{Name: "Eggs", Quantity: 1},
		},
		{
			name: "full payload normalized",
			body: `{"name":"  Eggs  ","description":"free range","quantity":2,"completed":true}`,
			want: models.CreateItemRequest{Name: "Eggs", Description: "free range", Quantity: 2, Completed: true},
		},
		{
			name:        "missing name",
			body:        `{"quantity":2}`,
			wantDetails: []string{"Name is required and must be a non-empty string"},
		},
		{
			name:        "whitespace-only name",
			body:        `{"name":"   "}`,
			wantDetails: []string{"Name is required and must be a non-empty string"},
		},
		{
			name:        "name over 255 characters",
			body:        `{"name":"` + strings.Repeat("x", 256) + `"}`,
			wantDetails: []string{"Name must be 255 characters or less"},
		},
		{
			name: "name of exactly 255 characters passes",
			body: `{"name":"` + strings.Repeat("x", 255) + `"}`,
			want: models.CreateItemRequest{Name: strings.Repeat("x", 255), Quantity: 1},
		},
		{
			name:        "zero quantity",
			body:        `{"name":"Eggs","quantity":0}`,
			wantDetails: []string{"Quantity must be a positive integer"},
		},
		{
			name:        "fractional quantity",
			body:        `{"name":"Eggs","quantity":2.5}`,
			wantDetails: []string{"Quantity must be a positive integer"},
		},
		{
			name: "quantity three passes",
			body: `{"name":"Eggs","quantity":3}`,
			want: models.CreateItemRequest{Name: "Eggs", Quantity: 3},
		},
		{
			name:        "non-boolean completed",
			body:        `{"name":"Eggs","completed":"yes"}`,
			wantDetails: []string{"Completed must be a boolean value"},
		},
		{
			name:        "non-string description",
			body:        `{"name":"Eggs","description":7}`,
			wantDetails: []string{"Description must be a string"},
		},
		{
			name: "all violations collected",
			body: `{"quantity":-1,"completed":"yes"}`,
			wantDetails: []string{
				"Name is required and must be a non-empty string",
				"Quantity must be a positive integer",
				"Completed must be a boolean value",
			},
		},
		{
			name:        "malformed body",
			body:        `{"name":`,
			wantDetails: []string{"Request body must be valid JSON"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, details := ParseCreate(strings.NewReader(tt.body))
			if len(tt.wantDetails) > 0 {
				assert.Equal(t, tt.wantDetails, details)
				return
			}
			require.Empty(t, details)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestParsePatch(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails []string
		check       func(t *testing.T, patch models.ItemPatch)
	}{
		{
			name: "empty object is an empty patch",
			body: `{}`,
			check: func(t *testing.T, patch models.ItemPatch) {
				assert.True(t, patch.Empty())
			},
		},
		{
			name: "quantity only",
			body: `{"quantity":5}`,
			check: func(t *testing.T, patch models.ItemPatch) {
				require.NotNil(t, patch.Quantity)
				assert.Equal(t, 5, *patch.Quantity)
				assert.Nil(t, patch.Name)
				assert.Nil(t, patch.Completed)
			},
		},
		{
			name: "name trimmed",
			body: `{"name":" Oat milk "}`,
			check: func(t *testing.T, patch models.ItemPatch) {
				require.NotNil(t, patch.Name)
				assert.Equal(t, "Oat milk", *patch.Name)
			},
		},
		{
			name:        "empty name rejected",
			body:        `{"name":""}`,
			wantDetails: []string{"Name is required and must be a non-empty string"},
		},
		{
			name:        "fractional quantity rejected",
			body:        `{"quantity":1.5}`,
			wantDetails: []string{"Quantity must be a positive integer"},
		},
		{
			name: "completed false is a real field",
			body: `{"completed":false}`,
			check: func(t *testing.T, patch models.ItemPatch) {
				require.NotNil(t, patch.Completed)
				assert.False(t, *patch.Completed)
				assert.False(t, patch.Empty())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, details := ParsePatch(strings.NewReader(tt.body))
			if len(tt.wantDetails) > 0 {
				assert.Equal(t, tt.wantDetails, details)
				return
			}
			require.Empty(t, details)
			tt.check(t, patch)
		})
	}
}
