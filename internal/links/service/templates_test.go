package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a template with json config", func(t *testing.T) {
		st := newTestStore(t)
		svc := &TemplateService{Store: st}

		tpl, err := svc.Create(ctx, "alice", "spring sale", `{"theme":"light","cta":"Buy now"}`)
		require.NoError(t, err)
		require.NotEmpty(t, tpl.ID)

		got, err := st.Templates().GetTemplateByID(ctx, tpl.ID)
		require.NoError(t, err)
		require.Equal(t, "spring sale", got.Name)
	})

	t.Run("rejects non-json config", func(t *testing.T) {
		st := newTestStore(t)
		svc := &TemplateService{Store: st}

		_, err := svc.Create(ctx, "alice", "broken", `{"theme":`)
		require.ErrorIs(t, err, ErrInvalidTemplateRequest)
	})

	t.Run("free users may own spare templates", func(t *testing.T) {
		// Only adoption by a link consumes quota; owning templates is free.
		st := newTestStore(t)
		svc := &TemplateService{Store: st}

		for _, name := range []string{"one", "two", "three"} {
			_, err := svc.Create(ctx, "alice", name, `{}`)
			require.NoError(t, err)
		}

		templates, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, templates, 3)
	})
}
