package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

func TestServiceAdd_SavesAndPrintsID(t *testing.T) {
	billing, store := setupTestServices(t)

	out, err := execute(t, "service", "add", "X-Ray", "100")

	require.NoError(t, err)
	assert.Contains(t, out, "Service 'X-Ray' added with ID: 1")
	requireSaved(t, store, 1)

	service, ok := billing.GetService(1)
	require.True(t, ok)
	assert.Equal(t, domain.Money(10000), service.Price)
}

func TestServiceAdd_InvalidPrice(t *testing.T) {
	billing, store := setupTestServices(t)

	_, err := execute(t, "service", "add", "X-Ray", "cheap")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, billing.ListServices())
	requireSaved(t, store, 0)
}

func TestServiceAdd_PriceOutOfRange(t *testing.T) {
	billing, store := setupTestServices(t)

	_, err := execute(t, "service", "add", "Gold", "1e19")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmountOutOfRange)
	assert.Empty(t, billing.ListServices())
	requireSaved(t, store, 0)
}

func TestServiceList(t *testing.T) {
	billing, _ := setupTestServices(t)
	seedCatalog(billing)

	out, err := execute(t, "service", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ID: 1, Name: X-Ray, Price: $100.00")
	assert.Contains(t, out, "ID: 2, Name: Consult, Price: $50.00")
}

func TestServiceList_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "service", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No services available.")
}

func TestServiceList_UsesConfiguredCurrency(t *testing.T) {
	billing, _ := setupTestServices(t)
	seedCatalog(billing)
	require.NoError(t, settingsService.SetCurrency("€"))

	out, err := execute(t, "service", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Price: €100.00")
}

func TestServiceGet(t *testing.T) {
	billing, _ := setupTestServices(t)
	seedCatalog(billing)

	out, err := execute(t, "service", "get", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "ID: 2, Name: Consult, Price: $50.00")

	_, err = execute(t, "service", "get", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service 9 not found")
}
