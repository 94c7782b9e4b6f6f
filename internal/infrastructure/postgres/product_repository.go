package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, description, price, utility, bill_cost, final_bill_retaceo, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Costos inician en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Description,
		product.Price, product.Utility, product.BillCost, product.FinalBillRetaceo,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Price, &p.Utility,
		&p.BillCost, &p.FinalBillRetaceo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE code = $1`, code))
}

// Update actualiza los campos editables. Costos y utilidad no se tocan aquí
// (se manejan vía aprobación de retaceo y análisis de precios).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateLandedCost escribe los campos de costo con gastos (solo aprobación).
func (r *ProductRepo) UpdateLandedCost(productID string, billCost, finalBillRetaceo decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET bill_cost = $2, final_bill_retaceo = $3, updated_at = now() WHERE id = $1`,
		productID, billCost, finalBillRetaceo,
	)
	if err != nil {
		return fmt.Errorf("update product landed cost: %w", err)
	}
	return nil
}

// UpdatePrice escribe precio de venta y utilidad vigentes (solo análisis de precios).
func (r *ProductRepo) UpdatePrice(productID string, price, utility decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET price = $2, utility = $3, updated_at = now() WHERE id = $1`,
		productID, price, utility,
	)
	if err != nil {
		return fmt.Errorf("update product price: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Search busca por código o nombre. El término llega ya normalizado (sin
// tildes, minúsculas); del lado SQL se pliegan las vocales acentuadas con
// translate para comparar manzanas con manzanas.
func (r *ProductRepo) Search(normalizedTerm string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE translate(lower(code), 'áéíóúüñ', 'aeiouun') LIKE '%' || $1 || '%'
		   OR translate(lower(name), 'áéíóúüñ', 'aeiouun') LIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, normalizedTerm, limit, offset)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Price, &p.Utility,
			&p.BillCost, &p.FinalBillRetaceo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
