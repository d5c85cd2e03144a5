package schemas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prompthub/internal/schemas"
)

func validUserCreate() schemas.UserCreate {
	return schemas.UserCreate{
		Username: "alice",
		Email:    "a@example.com",
		Password: "longenough1",
		FullName: "Alice A",
	}
}

func TestUserCreate_Valid(t *testing.T) {
	assert.NoError(t, schemas.Validate(validUserCreate()))
}

func TestUserCreate_UsernamePattern(t *testing.T) {
	ok := []string{"alice", "alice_a", "alice-a", "Alice123", "a"}
	for _, username := range ok {
		req := validUserCreate()
		req.Username = username
		assert.NoError(t, schemas.Validate(req), "username %q should be accepted", username)
	}

	bad := []string{"alice a", "alice!", "älice", "a@b", ""}
	for _, username := range bad {
		req := validUserCreate()
		req.Username = username
		assert.Error(t, schemas.Validate(req), "username %q should be rejected", username)
	}
}

func TestUserCreate_EmailPattern(t *testing.T) {
	ok := []string{"a@example.com", "a.b+c@ex-ample.co.uk", "under_score@host.io"}
	for _, email := range ok {
		req := validUserCreate()
		req.Email = email
		assert.NoError(t, schemas.Validate(req), "email %q should be accepted", email)
	}

	bad := []string{"not-an-email", "a@nodot", "@example.com", "a@.com", ""}
	for _, email := range bad {
		req := validUserCreate()
		req.Email = email
		assert.Error(t, schemas.Validate(req), "email %q should be rejected", email)
	}
}

func TestUserCreate_PasswordLength(t *testing.T) {
	req := validUserCreate()

	req.Password = "short7c"
	err := schemas.Validate(req)
	assert.Error(t, err)

	var verrs schemas.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, "password", verrs[0].Field)
	assert.Equal(t, "min", verrs[0].Rule)

	req.Password = "exactly8"
	assert.NoError(t, schemas.Validate(req))

	req.Password = string(make([]byte, 101))
	assert.Error(t, schemas.Validate(req))
}

func TestUserUpdate_AbsentFieldsSkipValidation(t *testing.T) {
	// All fields absent: nothing to validate.
	assert.NoError(t, schemas.Validate(schemas.UserUpdate{}))

	bad := "not-an-email"
	assert.Error(t, schemas.Validate(schemas.UserUpdate{Email: &bad}))

	good := "a@example.com"
	assert.NoError(t, schemas.Validate(schemas.UserUpdate{Email: &good}))
}

func TestCategoryCreate_Color(t *testing.T) {
	req := schemas.CategoryCreate{Name: "Writing", Color: "blue"}
	assert.Error(t, schemas.Validate(req))

	req.Color = "#3b82F6"
	assert.NoError(t, schemas.Validate(req))

	// Shorthand hex is not a valid column value, exactly 7 chars required.
	req.Color = "#fff"
	assert.Error(t, schemas.Validate(req))

	req.Color = "#GGGGGG"
	assert.Error(t, schemas.Validate(req))
}

func TestCategoryCreate_DefaultColor(t *testing.T) {
	req := schemas.CategoryCreate{Name: "Writing"}
	req.ApplyDefaults()
	assert.Equal(t, "#3B82F6", req.Color)
	assert.NoError(t, schemas.Validate(req))
}

func TestPromptTemplateSearch_PaginationBounds(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	cases := []struct {
		name    string
		limit   *int
		offset  *int
		wantErr bool
	}{
		{"defaults", nil, nil, false},
		{"limit lower bound", intPtr(1), nil, false},
		{"limit upper bound", intPtr(100), nil, false},
		{"limit zero", intPtr(0), nil, true},
		{"limit too large", intPtr(101), nil, true},
		{"limit negative", intPtr(-5), nil, true},
		{"offset zero", nil, intPtr(0), false},
		{"offset negative", nil, intPtr(-1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter := schemas.PromptTemplateSearch{Limit: tc.limit, Offset: tc.offset}
			filter.ApplyDefaults()
			err := schemas.Validate(filter)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPromptTemplateSearch_ApplyDefaults(t *testing.T) {
	var filter schemas.PromptTemplateSearch
	filter.ApplyDefaults()
	assert.Equal(t, 20, *filter.Limit)
	assert.Equal(t, 0, *filter.Offset)

	// Explicit values survive.
	limit, offset := 50, 40
	filter = schemas.PromptTemplateSearch{Limit: &limit, Offset: &offset}
	filter.ApplyDefaults()
	assert.Equal(t, 50, *filter.Limit)
	assert.Equal(t, 40, *filter.Offset)
}

func TestPromptGenerationCreate_DefaultModel(t *testing.T) {
	req := schemas.PromptGenerationCreate{PromptTemplateID: 1}
	req.ApplyDefaults()
	assert.Equal(t, "gpt-3.5-turbo", req.OpenAIModel)

	req = schemas.PromptGenerationCreate{PromptTemplateID: 1, OpenAIModel: "gpt-4"}
	req.ApplyDefaults()
	assert.Equal(t, "gpt-4", req.OpenAIModel)
}

func TestValidationErrors_Message(t *testing.T) {
	req := validUserCreate()
	req.Username = "has space"
	err := schemas.Validate(req)

	var verrs schemas.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
	assert.Equal(t, "username", verrs[0].Field)
	assert.Contains(t, verrs.Error(), "username")
}
