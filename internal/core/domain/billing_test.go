package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBill_ComputesTotal(t *testing.T) {
	xray := Service{ID: 1, Name: "X-Ray", Price: MoneyFromFloat(100)}
	consult := Service{ID: 2, Name: "Consult", Price: MoneyFromFloat(50)}
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)

	bill, err := NewBill(7, 1, []Service{xray, consult, consult}, at)

	require.NoError(t, err)
	assert.Equal(t, 7, bill.ID)
	assert.Equal(t, 1, bill.PatientID)
	assert.Len(t, bill.LineItems, 3)
	assert.Equal(t, MoneyFromFloat(200), bill.Total)
	assert.Equal(t, "2024-03-01 09:30:00", bill.CreatedAt)
}

func TestNewBill_CopiesLineItems(t *testing.T) {
	items := []Service{{ID: 1, Name: "X-Ray", Price: 10000}}

	bill, err := NewBill(1, 1, items, time.Now())
	require.NoError(t, err)
	items[0].Price = 1

	assert.Equal(t, Money(10000), bill.LineItems[0].Price)
	assert.Equal(t, Money(10000), bill.Total)
}

func TestBill_Clone(t *testing.T) {
	bill := Bill{ID: 1, LineItems: []Service{{ID: 1, Price: 500}}, Total: 500}

	clone := bill.Clone()
	clone.LineItems[0].Name = "changed"

	assert.Empty(t, bill.LineItems[0].Name)
}

func TestBill_ComputeTotal(t *testing.T) {
	bill := Bill{LineItems: []Service{{Price: 150}, {Price: 250}}, Total: 1}

	total, err := bill.ComputeTotal()

	require.NoError(t, err)
	assert.Equal(t, Money(400), total)
}

func TestSumPrices_Empty(t *testing.T) {
	total, err := SumPrices(nil)

	require.NoError(t, err)
	assert.Equal(t, Money(0), total)
}

func TestSumPrices_Overflow(t *testing.T) {
	big := Service{ID: 1, Price: MoneyFromFloat(9e16)}

	_, err := SumPrices([]Service{big, big})
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = SumPrices([]Service{{Price: -big.Price}, {Price: -big.Price}})
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestNewBill_TotalOverflow(t *testing.T) {
	big := Service{ID: 1, Price: Money(math.MaxInt64)}

	_, err := NewBill(1, 1, []Service{big, {ID: 2, Price: 1}}, time.Now())

	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}
