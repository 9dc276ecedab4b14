package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogd/internal/validate"
)

func TestProductForCreate_AllMissing(t *testing.T) {
	in, errs := validate.ProductForCreate([]byte(`{}`))
	require.Nil(t, in)
	require.NotNil(t, errs)

	for _, field := range []string{"name", "image", "price", "status", "types", "sizes", "rating"} {
		assert.Contains(t, errs, field, "field %q should be reported", field)
		assert.Contains(t, errs[field], "is required")
	}
	assert.NotContains(t, errs, "category_id", "optional field must not be reported")
}

func TestProductForCreate_Valid(t *testing.T) {
	body := `{
		"name": "Runner",
		"image": "uploads/img1.jpg",
		"price": 59.99,
		"status": "available",
		"types": ["t1"],
		"sizes": ["M"],
		"rating": 4,
		"category_id": 1
	}`
	in, errs := validate.ProductForCreate([]byte(body))
	require.Nil(t, errs)
	require.NotNil(t, in)

	assert.Equal(t, "Runner", *in.Name)
	assert.Equal(t, "uploads/img1.jpg", *in.Image)
	assert.Equal(t, "59.99", in.Price.String())
	assert.Equal(t, "available", *in.Status)
	assert.Equal(t, []string{"t1"}, []string(*in.Types))
	assert.Equal(t, []string{"M"}, []string(*in.Sizes))
	assert.Equal(t, 4.0, *in.Rating)
	require.NotNil(t, in.CategoryID)
	assert.Equal(t, int64(1), *in.CategoryID)
}

func TestProductForCreate_BadFields(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		field  string
		reason string
	}{
		{"long name", `{"name":"` + strings.Repeat("x", 256) + `"}`, "name", "must be at most 255 characters"},
		{"bad status", `{"status":"archived"}`, "status", "must be one of available, pending, sold"},
		{"negative price", `{"price":-1}`, "price", "must be at least 0"},
		{"rating too low", `{"rating":0}`, "rating", "must be at least 1"},
		{"rating too high", `{"rating":6}`, "rating", "must be at most 5"},
		{"scalar types", `{"types":"t1"}`, "types", "must be an array of strings"},
		{"boolean price", `{"price":true}`, "price", "must be a number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, errs := validate.ProductForCreate([]byte(tc.body))
			require.Nil(t, in)
			require.Contains(t, errs, tc.field)
			assert.Contains(t, errs[tc.field], tc.reason)
		})
	}
}

func TestProductForUpdate_OptionalFieldsAbsent(t *testing.T) {
	in, errs := validate.ProductForUpdate([]byte(`{"name":"Runner v2","price":49}`))
	require.Nil(t, errs)
	require.NotNil(t, in)

	assert.Equal(t, "Runner v2", *in.Name)
	assert.Equal(t, "49", in.Price.String())
	assert.Nil(t, in.Image)
	assert.Nil(t, in.Status)
	assert.Nil(t, in.Types)
	assert.Nil(t, in.Sizes)
	assert.Nil(t, in.Rating)
	assert.Nil(t, in.CategoryID)
}

func TestProductForUpdate_RequiredFields(t *testing.T) {
	in, errs := validate.ProductForUpdate([]byte(`{"image":"uploads/x.jpg"}`))
	require.Nil(t, in)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")
	assert.NotContains(t, errs, "image")
}

func TestCategory(t *testing.T) {
	in, errs := validate.Category([]byte(`{"name":"Shoes"}`))
	require.Nil(t, errs)
	assert.Equal(t, "Shoes", *in.Name)

	_, errs = validate.Category([]byte(`{}`))
	require.Contains(t, errs, "name")
	assert.Contains(t, errs["name"], "is required")

	_, errs = validate.Category([]byte(`{"name":""}`))
	require.Contains(t, errs, "name")
	assert.Contains(t, errs["name"], "must not be empty")
}

func TestMalformedBody(t *testing.T) {
	_, errs := validate.Category([]byte(`{not json`))
	require.Contains(t, errs, "body")
}

func TestID(t *testing.T) {
	id, ok := validate.ID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, s := range []string{"", "0", "-3", "abc", "1.5"} {
		_, ok := validate.ID(s)
		assert.False(t, ok, "ID(%q) should be rejected", s)
	}
}

func TestStatus(t *testing.T) {
	for _, s := range []string{"available", "pending", "sold"} {
		_, ok := validate.Status(s)
		assert.True(t, ok, "Status(%q) should be accepted", s)
	}
	for _, s := range []string{"", "AVAILABLE", "archived"} {
		_, ok := validate.Status(s)
		assert.False(t, ok, "Status(%q) should be rejected", s)
	}
}
