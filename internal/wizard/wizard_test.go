package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/cepress/cli/internal/errors"
	"github.com/cepress/cli/internal/templates"
)

func allFixed() map[Field]bool {
	fixed := map[Field]bool{}
	for _, q := range questions() {
		fixed[q.field] = true
	}
	return fixed
}

func TestQuestions_Order(t *testing.T) {
	var fields []Field
	for _, q := range questions() {
		fields = append(fields, q.field)
	}
	assert.Equal(t, []Field{
		FieldProjectName, FieldDatabase, FieldPrisma, FieldAuth,
		FieldSwagger, FieldValidation, FieldModels,
	}, fields)
}

func TestShouldAsk_Prisma(t *testing.T) {
	var prisma question
	for _, q := range questions() {
		if q.field == FieldPrisma {
			prisma = q
		}
	}

	tests := []struct {
		db   templates.Database
		want bool
	}{
		{templates.SQLite, false},
		{templates.PostgreSQL, true},
		{templates.MySQL, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.db), func(t *testing.T) {
			got := shouldAsk(prisma, Options{}, templates.Configuration{Database: tt.db})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShouldAsk_Fixed(t *testing.T) {
	q := questions()[0]
	assert.True(t, shouldAsk(q, Options{}, templates.Configuration{}))
	assert.False(t, shouldAsk(q, Options{Fixed: map[Field]bool{FieldProjectName: true}}, templates.Configuration{}))
}

func TestValidateProjectName(t *testing.T) {
	assert.NoError(t, validateProjectName("my-app_2"))
	assert.NoError(t, validateProjectName("  padded  "))
	assert.EqualError(t, validateProjectName("   "), "project name cannot be empty")
	assert.Error(t, validateProjectName("My App"))
}

func TestFormError(t *testing.T) {
	assert.ErrorIs(t, formError(huh.ErrUserAborted), oerrors.ErrCancelled)
	assert.ErrorIs(t, formError(context.Canceled), oerrors.ErrCancelled)

	other := errors.New("tty gone")
	err := formError(other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, oerrors.ErrCancelled)
}

func TestOptions_DefaultFirst(t *testing.T) {
	assert.Equal(t, templates.SQLite, databaseOptions()[0].Value)
	assert.Equal(t, templates.AuthNone, authOptions()[0].Value)
	assert.False(t, swaggerOptions()[0].Value)
	assert.Equal(t, templates.UserPost, modelsOptions()[0].Value)
}

func TestRun_AllFixed(t *testing.T) {
	cfg, err := Run(context.Background(), Options{
		Defaults: templates.Configuration{
			ProjectName: "shop-api",
			Database:    templates.MySQL,
			UsePrisma:   true,
			Auth:        templates.AuthJWT,
		},
		Fixed: allFixed(),
	})
	require.NoError(t, err)

	assert.Equal(t, "shop-api", cfg.ProjectName)
	assert.Equal(t, templates.MySQL, cfg.Database)
	assert.True(t, cfg.UsePrisma)
	assert.Equal(t, templates.Zod, cfg.Validation)
	assert.Equal(t, templates.UserPost, cfg.Models)
}

func TestRun_DefaultName(t *testing.T) {
	cfg, err := Run(context.Background(), Options{Fixed: allFixed()})
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectName, cfg.ProjectName)
}

func TestRun_SQLiteDropsPrisma(t *testing.T) {
	cfg, err := Run(context.Background(), Options{
		Defaults: templates.Configuration{ProjectName: "api", Database: templates.SQLite, UsePrisma: true},
		Fixed:    allFixed(),
	})
	require.NoError(t, err)
	assert.False(t, cfg.UsePrisma)
}

func TestRun_InvalidFixedName(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Defaults: templates.Configuration{ProjectName: "My App"},
		Fixed:    allFixed(),
	})
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}
