package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	billing, _ := setupTestServices(t)
	seedCatalog(billing)
	_, _, err := billing.CreateBill(1, []int{1, 2})
	require.NoError(t, err)

	out, err := execute(t, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Clinic Billing Status")
	assert.Contains(t, out, "Patients:      1 (next ID 2)")
	assert.Contains(t, out, "Services:      2 (next ID 3)")
	assert.Contains(t, out, "Bills:         1 (next ID 2)")
	assert.Contains(t, out, "Total billed:  $150.00")
	assert.NotContains(t, out, "Ephemeral")
}
