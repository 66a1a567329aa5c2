package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/yobo-blog/models"
)

const (
	// FieldTitle targets the post title.
	FieldTitle = "title"

	// FieldContent targets the post body.
	FieldContent = "content"
)

const maxTitleLength = 180

type BlogPostValidator struct{}

func NewBlogPostValidator() Validator {
	return &BlogPostValidator{}
}

// Validate checks a [models.BlogPostInput]: the trimmed title must hold
// 1..180 characters and the content must not be blank.
func (v *BlogPostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BlogPostInput:
		return v.validateInput(value, fields...)
	case *models.BlogPostInput:
		return v.validateInput(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BlogPostValidator) validateInput(in models.BlogPostInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	var errs violations
	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(in.Title)
			switch {
			case title == "":
				errs.add("title is required")
			case utf8.RuneCountInString(title) > maxTitleLength:
				errs.add(fmt.Sprintf("title must be at most %d characters long", maxTitleLength))
			}
		case FieldContent:
			if strings.TrimSpace(in.Content) == "" {
				errs.add("content is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
