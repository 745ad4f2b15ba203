package store_repo

import (
	"context"
	"testing"

	"PagSeguroBridge/internal/domain/store"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PgStoreRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &PgStoreRepo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestGetCurrency(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "name", "currency_code", "rate"}

	t.Run("should find currency by code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name, currency_code, rate FROM currencies WHERE currency_code = \$1`).
			WithArgs("BRL").
			WillReturnRows(mock.NewRows(columns).AddRow(1, "Real", "BRL", decimal.NewFromInt(1)))

		c, err := repo.GetCurrencyByCode(ctx, "BRL")

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, 1, c.ID)
		assert.Equal(t, "BRL", c.CurrencyCode)
		assert.True(t, c.Rate.Equal(decimal.NewFromInt(1)))
	})

	t.Run("should find currency by id", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name, currency_code, rate FROM currencies WHERE id = \$1`).
			WithArgs(2).
			WillReturnRows(mock.NewRows(columns).AddRow(2, "US Dollar", "USD", decimal.RequireFromString("0.2")))

		c, err := repo.GetCurrencyByID(ctx, 2)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "USD", c.CurrencyCode)
	})

	t.Run("should return nil for unknown currency", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .* FROM currencies`).
			WithArgs("EUR").
			WillReturnRows(mock.NewRows(columns))

		c, err := repo.GetCurrencyByCode(ctx, "EUR")

		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("should handle database error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .* FROM currencies`).WithArgs(1).WillReturnError(assert.AnError)

		c, err := repo.GetCurrencyByID(ctx, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "get currency")
		assert.Nil(t, c)
	})
}

func TestConvertFromPrimary(t *testing.T) {
	repo, _ := newMockRepo(t)
	ctx := context.Background()

	t.Run("should multiply by target rate", func(t *testing.T) {
		got, err := repo.ConvertFromPrimary(ctx, decimal.RequireFromString("10.00"),
			store.Currency{CurrencyCode: "USD", Rate: decimal.RequireFromString("0.1865")})

		require.NoError(t, err)
		assert.Equal(t, "1.865", got.String())
	})

	t.Run("should refuse a currency without rate", func(t *testing.T) {
		_, err := repo.ConvertFromPrimary(ctx, decimal.NewFromInt(1), store.Currency{CurrencyCode: "USD"})

		require.Error(t, err)
	})
}

func TestGetAddressByID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "first_name", "last_name", "email", "address1", "address2",
		"city", "zip_postal_code", "country_id", "state_province_id"}

	t.Run("should return address with optional region ids", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		countryID := 76

		mock.ExpectQuery(`SELECT id, first_name, last_name, email, address1, address2, city, zip_postal_code, country_id, state_province_id FROM addresses WHERE id = \$1`).
			WithArgs(3).
			WillReturnRows(mock.NewRows(columns).
				AddRow(3, "Ana", "Souza", "ana@example.com", "Rua Augusta 500", "", "São Paulo", "01305-000", &countryID, (*int)(nil)))

		a, err := repo.GetAddressByID(ctx, 3)

		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, "Ana Souza", a.FullName())
		require.NotNil(t, a.CountryID)
		assert.Equal(t, 76, *a.CountryID)
		assert.Nil(t, a.StateProvinceID)
	})

	t.Run("should return nil for missing address", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .* FROM addresses`).WithArgs(404).WillReturnRows(mock.NewRows(columns))

		a, err := repo.GetAddressByID(ctx, 404)

		require.NoError(t, err)
		assert.Nil(t, a)
	})
}

func TestRegionLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("should return country", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name, two_letter_iso_code FROM countries WHERE id = \$1`).
			WithArgs(76).
			WillReturnRows(mock.NewRows([]string{"id", "name", "two_letter_iso_code"}).AddRow(76, "Brazil", "BR"))

		c, err := repo.GetCountryByID(ctx, 76)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "Brazil", c.Name)
	})

	t.Run("should return state province", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, country_id, name, abbreviation FROM state_provinces WHERE id = \$1`).
			WithArgs(25).
			WillReturnRows(mock.NewRows([]string{"id", "country_id", "name", "abbreviation"}).AddRow(25, 76, "São Paulo", "SP"))

		s, err := repo.GetStateProvinceByID(ctx, 25)

		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "SP", s.Abbreviation)
	})

	t.Run("should return nil for missing state", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .* FROM state_provinces`).
			WithArgs(999).
			WillReturnRows(mock.NewRows([]string{"id", "country_id", "name", "abbreviation"}))

		s, err := repo.GetStateProvinceByID(ctx, 999)

		require.NoError(t, err)
		assert.Nil(t, s)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("should return product", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name FROM products WHERE id = \$1`).
			WithArgs(11).
			WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow(11, "Coffee beans"))

		p, err := repo.GetProductByID(ctx, 11)

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Coffee beans", p.Name)
	})

	t.Run("should return customer", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, email FROM customers WHERE id = \$1`).
			WithArgs(7).
			WillReturnRows(mock.NewRows([]string{"id", "email"}).AddRow(7, "ana@example.com"))

		c, err := repo.GetCustomerByID(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "ana@example.com", c.Email)
	})

	t.Run("should return nil for missing customer", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, email FROM customers`).
			WithArgs(8).
			WillReturnRows(mock.NewRows([]string{"id", "email"}))

		c, err := repo.GetCustomerByID(ctx, 8)

		require.NoError(t, err)
		assert.Nil(t, c)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should handle product query error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name FROM products`).WithArgs(11).WillReturnError(assert.AnError)

		_, err := repo.GetProductByID(ctx, 11)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "get product")
	})
}
