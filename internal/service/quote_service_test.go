package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errsx "braseria/internal/errors"
)

func TestQuoteCalculate(t *testing.T) {
	svc := NewQuoteService()

	t.Run("group menu for ten", func(t *testing.T) {
		quote, err := svc.Calculate("menu_grupo_29", 10, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 290.0, quote.Total)
		assert.Equal(t, 116.0, quote.Deposit)
	})

	t.Run("drink tickets add three each", func(t *testing.T) {
		quote, err := svc.Calculate("menu_infantil_15", 8, 5, nil)
		require.NoError(t, err)
		assert.Equal(t, 135.0, quote.Total) // 15*8 + 5*3
		assert.Equal(t, 54.0, quote.Deposit)
	})

	t.Run("extra hour surcharges", func(t *testing.T) {
		quote, err := svc.Calculate("menu_grupo_39", 20, 0, []string{"02:00"})
		require.NoError(t, err)
		assert.Equal(t, 880.0, quote.Total) // 39*20 + 100

		quote, err = svc.Calculate("menu_grupo_39", 20, 0, []string{"03:00"})
		require.NoError(t, err)
		assert.Equal(t, 1080.0, quote.Total) // 39*20 + 300
	})

	t.Run("deposit is exactly forty percent rounded to cents", func(t *testing.T) {
		quote, err := svc.Calculate("menu_grupo_29", 3, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 87.0, quote.Total)
		assert.Equal(t, 34.8, quote.Deposit)
	})

	t.Run("total is never negative", func(t *testing.T) {
		quote, err := svc.Calculate("menu_picoteo_20", 1, 0, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.Total, 0.0)
	})

	t.Run("unknown menu is a configuration error", func(t *testing.T) {
		_, err := svc.Calculate("menu_secreto", 4, 0, nil)
		require.Error(t, err)
		assert.True(t, errsx.IsConfiguration(err))
	})

	t.Run("unknown extra is rejected, not ignored", func(t *testing.T) {
		_, err := svc.Calculate("menu_grupo_29", 10, 0, []string{"04:00"})
		require.Error(t, err)
		assert.True(t, errsx.IsConfiguration(err))
	})

	t.Run("invalid party size", func(t *testing.T) {
		_, err := svc.Calculate("menu_grupo_29", 0, 0, nil)
		require.Error(t, err)
		assert.True(t, errsx.IsValidation(err))
	})

	t.Run("negative drink tickets", func(t *testing.T) {
		_, err := svc.Calculate("menu_grupo_29", 10, -1, nil)
		require.Error(t, err)
		assert.True(t, errsx.IsValidation(err))
	})
}

func TestMinAdvance(t *testing.T) {
	assert.Equal(t, MinAdvanceNormal, MinAdvance("NORMAL"))
	assert.Equal(t, MinAdvanceEvent, MinAdvance("CHILD_PARTY"))
	assert.Equal(t, MinAdvanceEvent, MinAdvance("EXCLUSIVE_NIGHT"))
}

func TestMenus(t *testing.T) {
	svc := NewQuoteService()
	menus := svc.Menus()
	require.NotEmpty(t, menus)

	menu, ok := svc.MenuByCode("menu_grupo_29")
	require.True(t, ok)
	assert.Equal(t, 29, menu.PricePerPerson)

	_, ok = svc.MenuByCode("nope")
	assert.False(t, ok)
}
