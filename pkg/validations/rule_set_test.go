package validations_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validations/pkg/logger"
	"github.com/dmitrymomot/validations/pkg/validations"
)

func TestRuleSet_Add(t *testing.T) {
	t.Parallel()
	rs := validations.NewRuleSet()
	rs.Add(
		validations.NewMethod("email"),
		validations.NewMethod("email"),
		nil,
		validations.NewMethod("email", validations.WithMethod("valid_email?")),
	)
	assert.Equal(t, 2, rs.Len())
}

func TestRuleSet_Contexts(t *testing.T) {
	t.Parallel()
	always := validations.NewMethod("name")
	onCreate := validations.NewMethod("email", validations.WithContexts("create"))
	onBoth := validations.NewMethod("password", validations.WithContexts("create", "update"))
	rs := validations.NewRuleSet().Add(always, onCreate, onBoth)

	assert.Equal(t, []validations.Rule{always}, rs.Rules(""))
	assert.Equal(t, []validations.Rule{always}, rs.Rules(validations.DefaultContext))
	assert.Equal(t, []validations.Rule{onCreate, onBoth}, rs.Rules("create"))
	assert.Equal(t, []validations.Rule{onBoth}, rs.Rules("update"))
	assert.Empty(t, rs.Rules("delete"))
	assert.Equal(t, []string{validations.DefaultContext, "create", "update"}, rs.Contexts())
}

func TestRuleSet_Validate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rs := validations.NewRuleSet().Add(
		validations.NewMethod("email", validations.WithMethod("valid_email?")),
		validations.NewMethod("name"),
		validations.NewMethod("password", validations.WithContexts("create")),
	)

	t.Run("collects violations", func(t *testing.T) {
		res := newUser(validations.Checks{
			"valid_email?": failing(validations.Literal("is not valid")),
			"name":         passing(),
		})

		errs, err := rs.Validate(ctx, res, "")
		require.NoError(t, err)
		assert.Same(t, res, errs.Resource())
		assert.Equal(t, []string{"email"}, errs.Attributes())
		assert.Equal(t, []string{"is not valid"}, errs.FullMessages())

		valid, err := rs.Valid(ctx, res, "")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("runs only rules of the context", func(t *testing.T) {
		res := newUser(validations.Checks{
			"password": failing(validations.Literal("is too short")),
		})
		errs, err := rs.Validate(ctx, res, "create")
		require.NoError(t, err)
		assert.Equal(t, []string{"is too short"}, errs.FullMessages())
	})

	t.Run("valid resource", func(t *testing.T) {
		res := newUser(validations.Checks{
			"valid_email?": passing(),
			"name":         passing(),
		})
		valid, err := rs.Valid(ctx, res, "")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("stops on collaborator error", func(t *testing.T) {
		res := newUser(validations.Checks{
			"valid_email?": failing(validations.Literal("is not valid")),
		})
		errs, err := rs.Validate(ctx, res, "")
		assert.ErrorIs(t, err, validations.ErrCheckNotFound)
		require.NotNil(t, errs)
		assert.Equal(t, 1, errs.Len())

		valid, err := rs.Valid(ctx, res, "")
		assert.Error(t, err)
		assert.False(t, valid)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := rs.Validate(cctx, newUser(validations.Checks{}), "")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reuses collection across passes", func(t *testing.T) {
		res := newUser(validations.Checks{
			"valid_email?": passing(),
			"name":         failing(validations.Literal("is required")),
		})
		errs := validations.NewValidationErrors(res)
		require.NoError(t, errs.AddMessage("stale", validations.Literal("old")))

		require.NoError(t, rs.ValidateInto(ctx, errs, ""))
		assert.Equal(t, []string{"name"}, errs.Attributes())
		assert.Nil(t, errs.On("stale"))
	})
}

func TestRuleSet_Logging(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)
	rs := validations.NewRuleSet(validations.WithLogger(log)).Add(
		validations.NewMethod("email"),
		validations.NewMethod("missing"),
	)
	res := newUser(validations.Checks{"email": failing(validations.Literal("is invalid"))})

	_, err := rs.Validate(context.Background(), res, "")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "violation recorded")
	assert.Contains(t, out, "attribute=email")
	assert.Contains(t, out, "rule failed")
	assert.Contains(t, out, "pass_id=")
	assert.Contains(t, out, "context=default")
}

func TestSchema(t *testing.T) {
	t.Parallel()
	tr := constant("schema")
	rs := validations.NewRuleSet(validations.WithTransformer(tr))
	schema := validations.NewSchema("user", rs, &validations.Property{Name: "email", Label: "E-mail"})

	assert.Equal(t, "E-mail", schema.Property("email").Label)
	assert.Nil(t, schema.Property("unknown"))
	assert.NotNil(t, schema.Transformer())

	var nilSchema *validations.Schema
	assert.Nil(t, nilSchema.Property("email"))
	assert.Nil(t, nilSchema.Transformer())
	assert.Nil(t, validations.NewSchema("bare", nil).Transformer())
}
