package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northsupermart/storefront/internal/db/dbtest"
	"github.com/northsupermart/storefront/internal/db/models"
)

func TestNilDB(t *testing.T) {
	_, err := List(nil)
	require.ErrorIs(t, err, ErrDBNil)
	_, err = Get(nil, 1)
	require.ErrorIs(t, err, ErrDBNil)
	require.ErrorIs(t, Create(nil, &models.Product{}), ErrDBNil)
	require.ErrorIs(t, Update(nil, 1, Fields{}, nil), ErrDBNil)
	require.ErrorIs(t, Delete(nil, 1), ErrDBNil)
}

func TestCreateGetList(t *testing.T) {
	db := dbtest.New(t)

	empty, err := List(db)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.ErrorIs(t, Create(db, nil), ErrProductNil)

	first := &models.Product{Name: "Basmati Rice 5kg", Category: "Grocery", Price: 1850, Image: "https://cdn/rice.jpg"}
	second := &models.Product{Name: "Olive Oil", Category: "Grocery", Price: 2400.5}
	require.NoError(t, Create(db, first))
	require.NoError(t, Create(db, second))
	require.NotZero(t, first.ID)
	require.Greater(t, second.ID, first.ID)

	got, err := Get(db, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice 5kg", got.Name)
	assert.Equal(t, "https://cdn/rice.jpg", got.Image)

	_, err = Get(db, 9999)
	require.ErrorIs(t, err, ErrProductNotFound)

	all, err := List(db)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "list is ordered by id descending")
	assert.Equal(t, first.ID, all[1].ID)
}

func TestUpdate(t *testing.T) {
	testCases := []struct {
		name      string
		image     *string
		wantImage string
	}{
		{
			name:      "without upload keeps image",
			image:     nil,
			wantImage: "https://cdn/old.jpg",
		},
		{
			name:      "with upload replaces image",
			image:     func() *string { s := "https://api/uploads/1.png"; return &s }(),
			wantImage: "https://api/uploads/1.png",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := dbtest.New(t)

			p := &models.Product{Name: "Tea", Category: "Drinks", Price: 500, Image: "https://cdn/old.jpg", Description: "old"}
			require.NoError(t, Create(db, p))

			err := Update(db, p.ID, Fields{Name: "Green Tea", Category: "Beverages", Price: 650, Description: "new"}, tc.image)
			require.NoError(t, err)

			got, err := Get(db, p.ID)
			require.NoError(t, err)
			assert.Equal(t, "Green Tea", got.Name)
			assert.Equal(t, "Beverages", got.Category)
			assert.InDelta(t, 650.0, got.Price, 0.0001)
			assert.Equal(t, "new", got.Description)
			assert.Equal(t, tc.wantImage, got.Image)
		})
	}
}

func TestUpdateAndDeleteMissingRow(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, Update(db, 42, Fields{Name: "ghost"}, nil))
	require.NoError(t, Delete(db, 42))

	p := &models.Product{Name: "Soap"}
	require.NoError(t, Create(db, p))
	require.NoError(t, Delete(db, p.ID))

	_, err := Get(db, p.ID)
	require.ErrorIs(t, err, ErrProductNotFound)
}
