package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"
	"github.com/umalmyha/customer-accounts/internal/model"
	"github.com/umalmyha/customer-accounts/pkg/db/transactor"
)

// CustomerRepository represents behavior for customer repository.
// FindByID and FindHierarchy return nil without error if customer is missing.
type CustomerRepository interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, int64) (*model.Customer, error)
	FindByIDs(context.Context, []int64) ([]*model.Customer, error)
	FindHierarchy(context.Context, int64) (*model.CustomerHierarchy, error)
}

const customerColumns = "id, name, lifetime, parent_id, owner_id, organization_id, group_id, internal_rating"

type postgresCustomerRepository struct {
	trx      transactor.PgxTransactor
	executor transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomerRepository builds postgres customer repository
func NewPostgresCustomerRepository(trx transactor.PgxTransactor, executor transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx, executor: executor}
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	var customers []*model.Customer

	err := r.trx.WithinTransactionWithOptions(ctx, func(ctx context.Context) error {
		q := fmt.Sprintf("SELECT %s FROM customers ORDER BY id", customerColumns)
		found, err := r.queryCustomers(ctx, q)
		if err != nil {
			return err
		}

		if err := r.attachLinks(ctx, found,
			"SELECT customer_id, user_id FROM customer_sales_representatives ORDER BY customer_id, user_id",
			"SELECT customer_id, id FROM customer_users ORDER BY customer_id, id",
		); err != nil {
			return err
		}

		g, err := model.NewCustomerGraph(found)
		if err != nil {
			return err
		}
		customers = g.All()
		return nil
	}, transactor.ReadOnlySnapshot)
	if err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c *model.Customer

	err := r.trx.WithinTransactionWithOptions(ctx, func(ctx context.Context) error {
		b := &pgx.Batch{}
		b.Queue(fmt.Sprintf("SELECT %s FROM customers WHERE id = $1", customerColumns), id)
		b.Queue("SELECT id FROM customers WHERE parent_id = $1 ORDER BY id", id)
		b.Queue("SELECT user_id FROM customer_sales_representatives WHERE customer_id = $1 ORDER BY user_id", id)
		b.Queue("SELECT id FROM customer_users WHERE customer_id = $1 ORDER BY id", id)

		br := r.executor.Executor(ctx).SendBatch(ctx, b)
		defer br.Close()

		found, err := r.scanCustomer(br.QueryRow())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}

		if found.ChildIDs, err = r.collectIDs(br.Query()); err != nil {
			return err
		}
		if found.SalesRepresentativeIDs, err = r.collectIDs(br.Query()); err != nil {
			return err
		}
		if found.UserIDs, err = r.collectIDs(br.Query()); err != nil {
			return err
		}

		c = found
		return nil
	}, transactor.ReadOnlySnapshot)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *postgresCustomerRepository) FindByIDs(ctx context.Context, ids []int64) ([]*model.Customer, error) {
	if len(ids) == 0 {
		return make([]*model.Customer, 0), nil
	}

	var customers []*model.Customer

	err := r.trx.WithinTransactionWithOptions(ctx, func(ctx context.Context) error {
		q := fmt.Sprintf("SELECT %s FROM customers WHERE id = ANY($1) ORDER BY id", customerColumns)
		found, err := r.queryCustomers(ctx, q, ids)
		if err != nil {
			return err
		}

		byID := make(map[int64]*model.Customer, len(found))
		for _, c := range found {
			c.ChildIDs = make([]int64, 0)
			byID[c.ID] = c
		}

		rows, err := r.executor.Executor(ctx).Query(ctx, "SELECT parent_id, id FROM customers WHERE parent_id = ANY($1) ORDER BY id", ids)
		if err != nil {
			return err
		}
		if err := r.collectPairs(rows, func(parentID, childID int64) {
			if p, ok := byID[parentID]; ok {
				p.ChildIDs = append(p.ChildIDs, childID)
			}
		}); err != nil {
			return err
		}

		if err := r.attachLinks(ctx, found,
			"SELECT customer_id, user_id FROM customer_sales_representatives WHERE customer_id = ANY($1) ORDER BY customer_id, user_id",
			"SELECT customer_id, id FROM customer_users WHERE customer_id = ANY($1) ORDER BY customer_id, id",
			ids,
		); err != nil {
			return err
		}

		customers = found
		return nil
	}, transactor.ReadOnlySnapshot)
	if err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *postgresCustomerRepository) FindHierarchy(ctx context.Context, id int64) (*model.CustomerHierarchy, error) {
	var h *model.CustomerHierarchy

	err := r.trx.WithinTransactionWithOptions(ctx, func(ctx context.Context) error {
		b := &pgx.Batch{}
		b.Queue("SELECT parent_id FROM customers WHERE id = $1", id)
		b.Queue("SELECT id FROM customers WHERE parent_id = $1 ORDER BY id", id)

		br := r.executor.Executor(ctx).SendBatch(ctx, b)
		defer br.Close()

		var found model.CustomerHierarchy
		if err := br.QueryRow().Scan(&found.ParentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}

		childIDs, err := r.collectIDs(br.Query())
		if err != nil {
			return err
		}
		found.ChildIDs = childIDs

		h = &found
		return nil
	}, transactor.ReadOnlySnapshot)
	if err != nil {
		return nil, err
	}

	return h, nil
}

func (r *postgresCustomerRepository) queryCustomers(ctx context.Context, q string, args ...any) ([]*model.Customer, error) {
	rows, err := r.executor.Executor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

// attachLinks loads sales representatives and customer users of provided customers
func (r *postgresCustomerRepository) attachLinks(ctx context.Context, customers []*model.Customer, repsQuery, usersQuery string, args ...any) error {
	byID := make(map[int64]*model.Customer, len(customers))
	for _, c := range customers {
		c.SalesRepresentativeIDs = make([]int64, 0)
		c.UserIDs = make([]int64, 0)
		byID[c.ID] = c
	}

	executor := r.executor.Executor(ctx)

	rows, err := executor.Query(ctx, repsQuery, args...)
	if err != nil {
		return err
	}
	if err := r.collectPairs(rows, func(customerID, userID int64) {
		if c, ok := byID[customerID]; ok {
			c.SalesRepresentativeIDs = append(c.SalesRepresentativeIDs, userID)
		}
	}); err != nil {
		return err
	}

	rows, err = executor.Query(ctx, usersQuery, args...)
	if err != nil {
		return err
	}
	return r.collectPairs(rows, func(customerID, customerUserID int64) {
		if c, ok := byID[customerID]; ok {
			c.UserIDs = append(c.UserIDs, customerUserID)
		}
	})
}

func (r *postgresCustomerRepository) collectPairs(rows pgx.Rows, fn func(int64, int64)) error {
	defer rows.Close()

	for rows.Next() {
		var left, right int64
		if err := rows.Scan(&left, &right); err != nil {
			return err
		}
		fn(left, right)
	}
	return rows.Err()
}

func (r *postgresCustomerRepository) collectIDs(rows pgx.Rows, err error) ([]int64, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *postgresCustomerRepository) scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	var lifetime pgtype.Numeric
	var rating *int16

	if err := row.Scan(&c.ID, &c.Name, &lifetime, &c.ParentID, &c.OwnerID, &c.OrganizationID, &c.GroupID, &rating); err != nil {
		return nil, err
	}

	if lifetime.Status == pgtype.Present {
		if lifetime.NaN {
			return nil, fmt.Errorf("customer %d has NaN lifetime", c.ID)
		}
		c.Lifetime = decimal.NewNullDecimal(decimal.NewFromBigInt(lifetime.Int, lifetime.Exp))
	}

	if rating != nil {
		ir, err := model.NewCustomerRating(int(*rating))
		if err != nil {
			return nil, fmt.Errorf("customer %d has invalid internal rating - %w", c.ID, err)
		}
		c.InternalRating = &ir
	}

	return &c, nil
}
