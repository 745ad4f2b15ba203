package store_repo

import (
	"context"
	"errors"
	"fmt"

	"PagSeguroBridge/internal/domain/store"
	"PagSeguroBridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgStoreRepo serves the read-only store lookups. Every Get method returns
// (nil, nil) when the row does not exist.
type PgStoreRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgStoreRepo(pg *postgres.Postgres) *PgStoreRepo {
	return &PgStoreRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgStoreRepo) GetCurrencyByCode(ctx context.Context, code string) (*store.Currency, error) {
	return r.getCurrency(ctx, squirrel.Eq{"currency_code": code})
}

func (r *PgStoreRepo) GetCurrencyByID(ctx context.Context, id int) (*store.Currency, error) {
	return r.getCurrency(ctx, squirrel.Eq{"id": id})
}

func (r *PgStoreRepo) getCurrency(ctx context.Context, where squirrel.Eq) (*store.Currency, error) {
	var c store.Currency
	found, err := r.getOne(ctx,
		r.builder.Select("id", "name", "currency_code", "rate").From("currencies").Where(where),
		&c.ID, &c.Name, &c.CurrencyCode, &c.Rate)
	if err != nil {
		return nil, fmt.Errorf("get currency: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// ConvertFromPrimary converts an amount from the primary store currency using the target's rate.
func (r *PgStoreRepo) ConvertFromPrimary(_ context.Context, amount decimal.Decimal, target store.Currency) (decimal.Decimal, error) {
	if target.Rate.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("currency %s has no exchange rate", target.CurrencyCode)
	}
	return store.ConvertFromPrimary(amount, target), nil
}

func (r *PgStoreRepo) GetAddressByID(ctx context.Context, id int) (*store.Address, error) {
	var a store.Address
	found, err := r.getOne(ctx,
		r.builder.Select("id", "first_name", "last_name", "email", "address1", "address2",
			"city", "zip_postal_code", "country_id", "state_province_id").
			From("addresses").
			Where(squirrel.Eq{"id": id}),
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Address1, &a.Address2,
		&a.City, &a.ZipPostalCode, &a.CountryID, &a.StateProvinceID)
	if err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &a, nil
}

func (r *PgStoreRepo) GetCountryByID(ctx context.Context, id int) (*store.Country, error) {
	var c store.Country
	found, err := r.getOne(ctx,
		r.builder.Select("id", "name", "two_letter_iso_code").From("countries").Where(squirrel.Eq{"id": id}),
		&c.ID, &c.Name, &c.TwoLetterISOCode)
	if err != nil {
		return nil, fmt.Errorf("get country: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

func (r *PgStoreRepo) GetStateProvinceByID(ctx context.Context, id int) (*store.StateProvince, error) {
	var s store.StateProvince
	found, err := r.getOne(ctx,
		r.builder.Select("id", "country_id", "name", "abbreviation").From("state_provinces").Where(squirrel.Eq{"id": id}),
		&s.ID, &s.CountryID, &s.Name, &s.Abbreviation)
	if err != nil {
		return nil, fmt.Errorf("get state province: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func (r *PgStoreRepo) GetProductByID(ctx context.Context, id int) (*store.Product, error) {
	var p store.Product
	found, err := r.getOne(ctx,
		r.builder.Select("id", "name").From("products").Where(squirrel.Eq{"id": id}),
		&p.ID, &p.Name)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (r *PgStoreRepo) GetCustomerByID(ctx context.Context, id int) (*store.Customer, error) {
	var c store.Customer
	found, err := r.getOne(ctx,
		r.builder.Select("id", "email").From("customers").Where(squirrel.Eq{"id": id}),
		&c.ID, &c.Email)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// getOne scans a single row into dest and reports whether the row exists.
func (r *PgStoreRepo) getOne(ctx context.Context, q squirrel.SelectBuilder, dest ...any) (bool, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
