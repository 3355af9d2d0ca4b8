package rop

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         Error
		kind        Kind
		code        string
		description string
	}{
		{"failure", Failure(), KindFailure, "General.Failure", "A failure has occurred."},
		{"unexpected", Unexpected(), KindUnexpected, "General.Unexpected", "An unexpected error has occurred."},
		{"validation", Validation(), KindValidation, "General.Validation", "A validation error has occurred."},
		{"conflict", Conflict(), KindConflict, "General.Conflict", "A conflict error has occurred."},
		{"not found", NotFound(), KindNotFound, "General.NotFound", "A 'Not Found' error has occurred."},
		{"unauthorized", Unauthorized(), KindUnauthorized, "General.Unauthorized", "An 'Unauthorized' error has occurred."},
		{"forbidden", Forbidden(), KindForbidden, "General.Forbidden", "A 'Forbidden' error has occurred."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.Equal(t, int(tt.kind), tt.err.NumericKind())
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.description, tt.err.Description())
			assert.Nil(t, tt.err.Metadata())
		})
	}
}

func TestConstructors_Options(t *testing.T) {
	t.Parallel()

	md := map[string]any{"field": "email"}
	err := Validation(WithCode("User.Email"), WithDescription("bad email"), WithMetadata(md))

	require.Equal(t, "User.Email", err.Code())
	require.Equal(t, "bad email", err.Description())
	require.Equal(t, md, err.Metadata())
	require.Equal(t, "User.Email: bad email", err.Error())

	md["field"] = "changed"
	require.Equal(t, "email", err.Metadata()["field"], "metadata must be copied on construction")

	got := err.Metadata()
	got["field"] = "changed"
	require.Equal(t, "email", err.Metadata()["field"], "metadata must be copied on read")
}

func TestConstructors_EmptyMetadataIsAbsent(t *testing.T) {
	t.Parallel()

	err := Failure(WithMetadata(map[string]any{}))
	require.Nil(t, err.Metadata())
	require.True(t, err.Equal(Failure()))
}

func TestCustom(t *testing.T) {
	t.Parallel()

	err := Custom(1, "Payment.Declined", "card declined", WithMetadata(map[string]any{"retry": false}))

	require.Equal(t, KindCustom, err.Kind())
	require.Equal(t, 1, err.NumericKind())
	require.Equal(t, "Payment.Declined", err.Code())
	require.Equal(t, "card declined", err.Description())
	require.Equal(t, map[string]any{"retry": false}, err.Metadata())

	// a custom discriminator that collides with a built-in ordinal is still custom
	require.False(t, err.Equal(Unexpected(WithCode("Payment.Declined"), WithDescription("card declined"))))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "NotFound", KindNotFound.String())
	require.Equal(t, "Custom", KindCustom.String())
	require.Equal(t, "Kind(42)", Kind(42).String())
}

func TestError_Equality(t *testing.T) {
	t.Parallel()

	a := NotFound(WithCode("User.NotFound"), WithMetadata(map[string]any{"id": 7, "tags": []string{"x"}}))
	b := NotFound(WithCode("User.NotFound"), WithMetadata(map[string]any{"tags": []string{"x"}, "id": 7}))

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	tests := []struct {
		name  string
		other Error
	}{
		{"code", NotFound(WithCode("Order.NotFound"), WithMetadata(map[string]any{"id": 7, "tags": []string{"x"}}))},
		{"description", NotFound(WithCode("User.NotFound"), WithDescription("gone"), WithMetadata(map[string]any{"id": 7, "tags": []string{"x"}}))},
		{"kind", Conflict(WithCode("User.NotFound"), WithDescription(a.Description()), WithMetadata(map[string]any{"id": 7, "tags": []string{"x"}}))},
		{"metadata value", NotFound(WithCode("User.NotFound"), WithMetadata(map[string]any{"id": 8, "tags": []string{"x"}}))},
		{"metadata keys", NotFound(WithCode("User.NotFound"), WithMetadata(map[string]any{"id": 7}))},
		{"no metadata", NotFound(WithCode("User.NotFound"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, a.Equal(tt.other))
			assert.False(t, tt.other.Equal(a))
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	target := NotFound(WithCode("User.NotFound"))
	wrapped := fmt.Errorf("loading user: %w", NotFound(WithCode("User.NotFound")))

	require.ErrorIs(t, wrapped, target)
	require.NotErrorIs(t, wrapped, NotFound())

	found, ok := AsError(wrapped)
	require.True(t, ok)
	require.True(t, found.Equal(target))

	_, ok = AsError(errors.New("plain"))
	require.False(t, ok)
}

func TestError_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Custom(12, "Quota.Exceeded", "too many", WithMetadata(map[string]any{"limit": 3})))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"code": "Quota.Exceeded",
		"description": "too many",
		"kind": "Custom",
		"numericKind": 12,
		"metadata": {"limit": 3}
	}`, string(data))

	data, err = json.Marshal(Forbidden())
	require.NoError(t, err)
	require.JSONEq(t, `{
		"code": "General.Forbidden",
		"description": "A 'Forbidden' error has occurred.",
		"kind": "Forbidden",
		"numericKind": 6
	}`, string(data))
}
