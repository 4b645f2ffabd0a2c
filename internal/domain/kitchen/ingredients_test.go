//go:build unit

package kitchen_test

import (
	"math/rand"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/kitchen"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tomatoID = uuid.New()
	basilID  = uuid.New()
	cheeseID = uuid.New()
	seven    = time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
)

func line(resID uuid.UUID, start time.Time, ingID uuid.UUID, name string, qty float64, unit string) kitchen.IngredientLine {
	return kitchen.IngredientLine{
		ReservationID:    resID,
		ReservationStart: start,
		IngredientID:     ingID,
		IngredientName:   name,
		Quantity:         qty,
		Unit:             unit,
	}
}

func TestAggregateIngredients_SharedIngredient(t *testing.T) {
	// Margherita uses 2 tomatoes, bruschetta uses 3; one order of each.
	resID := uuid.New()
	lines := []kitchen.IngredientLine{
		line(resID, seven, tomatoID, "Tomato", 2, "pcs"),
		line(resID, seven, cheeseID, "Mozzarella", 125, "g"),
		line(resID, seven, tomatoID, "Tomato", 3, "pcs"),
		line(resID, seven, basilID, "Basil", 5, "g"),
	}

	desc := kitchen.AggregateIngredients(lines)

	require.Contains(t, desc.TotalIngredients, tomatoID)
	assert.Equal(t, kitchen.IngredientDesc{ID: tomatoID, Name: "Tomato", Quantity: 5, Unit: "pcs"}, desc.TotalIngredients[tomatoID])
	assert.InDelta(t, 125, desc.TotalIngredients[cheeseID].Quantity, 1e-9)
	assert.Len(t, desc.TotalIngredients, 3)
}

func TestAggregateIngredients_OrderQuantityIsNotScaled(t *testing.T) {
	// A reservation ordering the same dish three times still produces a single
	// join row per recipe edge, so the recipe quantity is counted once.
	resID := uuid.New()
	desc := kitchen.AggregateIngredients([]kitchen.IngredientLine{
		line(resID, seven, tomatoID, "Tomato", 2, "pcs"),
	})

	assert.InDelta(t, 2, desc.TotalIngredients[tomatoID].Quantity, 1e-9)
}

func TestAggregateIngredients_ReorderingKeepsTotals(t *testing.T) {
	r1, r2, r3 := uuid.New(), uuid.New(), uuid.New()
	lines := []kitchen.IngredientLine{
		line(r1, seven, tomatoID, "Tomato", 2, "pcs"),
		line(r1, seven, basilID, "Basil", 1.5, "g"),
		line(r2, seven, tomatoID, "Tomato", 3, "pcs"),
		line(r2, seven.Add(30*time.Minute), cheeseID, "Mozzarella", 100, "g"),
		line(r3, seven.Add(time.Hour), basilID, "Basil", 0.25, "g"),
		line(r3, seven.Add(time.Hour), tomatoID, "Tomato", 1, "pcs"),
	}
	want := kitchen.AggregateIngredients(lines).TotalIngredients

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]kitchen.IngredientLine(nil), lines...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := kitchen.AggregateIngredients(shuffled).TotalIngredients
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("totals changed after shuffle (-want +got):\n%s", diff)
		}
	}
}

func TestAggregateIngredients_BucketPartition(t *testing.T) {
	r1, r2, r3 := uuid.New(), uuid.New(), uuid.New()
	half := seven.Add(30 * time.Minute)
	lines := []kitchen.IngredientLine{
		line(r1, seven, tomatoID, "Tomato", 2, "pcs"),
		line(r2, seven, basilID, "Basil", 1, "g"),
		line(r1, seven, basilID, "Basil", 2, "g"),
		line(r3, half, tomatoID, "Tomato", 4, "pcs"),
	}

	desc := kitchen.AggregateIngredients(lines)

	require.Len(t, desc.TimeBlocks, 2)
	first := desc.TimeBlocks["2024-01-01T19:00:00.000Z"]
	require.NotNil(t, first)
	assert.Equal(t, seven, first.StartTime)
	require.Len(t, first.Orders, 2)
	assert.Equal(t, r1, first.Orders[0].ID)
	assert.Equal(t, r2, first.Orders[1].ID)
	assert.InDelta(t, 2, first.Orders[0].TotalIngredients[basilID].Quantity, 1e-9)

	second := desc.TimeBlocks["2024-01-01T19:30:00.000Z"]
	require.NotNil(t, second)
	require.Len(t, second.Orders, 1)
	assert.Equal(t, r3, second.Orders[0].ID)

	seen := map[uuid.UUID]int{}
	for key, block := range desc.TimeBlocks {
		for _, o := range block.Orders {
			seen[o.ID]++
			assert.Equal(t, kitchen.TimeBlockKey(block.StartTime), key)
		}
	}
	assert.Equal(t, map[uuid.UUID]int{r1: 1, r2: 1, r3: 1}, seen)
}

func TestAggregateIngredients_Empty(t *testing.T) {
	desc := kitchen.AggregateIngredients(nil)
	assert.NotNil(t, desc.TotalIngredients)
	assert.NotNil(t, desc.TimeBlocks)
	assert.Empty(t, desc.TotalIngredients)
	assert.Empty(t, desc.TimeBlocks)
}

func TestTimeBlockKey(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	at := time.Date(2024, 1, 2, 4, 0, 0, 5_000_000, tokyo)
	assert.Equal(t, "2024-01-01T19:00:00.005Z", kitchen.TimeBlockKey(at))
}
