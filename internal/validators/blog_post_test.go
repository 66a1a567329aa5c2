package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/yobo-blog/models"
	"github.com/stretchr/testify/assert"
)

func TestBlogPostValidator_Validate(t *testing.T) {
	v := NewBlogPostValidator()
	ctx := context.Background()

	tests := []struct {
		name  string
		input models.BlogPostInput
		want  Violations
	}{
		{
			name:  "valid",
			input: models.BlogPostInput{Title: "Hello", Content: "<p>Body</p>"},
		},
		{
			name:  "title at limit",
			input: models.BlogPostInput{Title: strings.Repeat("ğ", 180), Content: "x"},
		},
		{
			name:  "title too long",
			input: models.BlogPostInput{Title: strings.Repeat("a", 181), Content: "x"},
			want:  Violations{"title must be at most 180 characters long"},
		},
		{
			name:  "blank title and content",
			input: models.BlogPostInput{Title: "  ", Content: "\n"},
			want:  Violations{"title is required", "content is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, violationsOf(t, err))
		})
	}
}

func TestBlogPostValidator_Errors(t *testing.T) {
	v := NewBlogPostValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, &models.BlogPostInput{}, FieldEmail), ErrUnknownField)
	assert.NoError(t, v.Validate(ctx, models.BlogPostInput{Title: "only title"}, FieldTitle))
}
