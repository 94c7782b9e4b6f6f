package retaceo_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	appretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/retaceo"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

// memStore almacén en memoria compartido por los fakes de un mismo test.
// El mutex garantiza que el compare-and-swap de UpdateStatus sea atómico
// también bajo los tests de concurrencia.
type memStore struct {
	mu sync.Mutex

	purchases       map[string]*entity.Purchase
	purchaseDetails map[string][]*entity.PurchaseDetail
	expenses        map[string][]*entity.ExpenseEntry
	retaceos        map[string]*entity.Retaceo
	retaceoDetails  map[string][]*entity.RetaceoDetail
	products        map[string]*entity.Product
	history         []*entity.PriceHistoryRecord
}

func newMemStore() *memStore {
	return &memStore{
		purchases:       map[string]*entity.Purchase{},
		purchaseDetails: map[string][]*entity.PurchaseDetail{},
		expenses:        map[string][]*entity.ExpenseEntry{},
		retaceos:        map[string]*entity.Retaceo{},
		retaceoDetails:  map[string][]*entity.RetaceoDetail{},
		products:        map[string]*entity.Product{},
	}
}

// ── PurchaseRepository ────────────────────────────────────────────────────────

type fakePurchaseRepo struct{ s *memStore }

var _ repository.PurchaseRepository = (*fakePurchaseRepo)(nil)

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.purchases[id], nil
}

func (r *fakePurchaseRepo) GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.purchaseDetails[purchaseID], nil
}

func (r *fakePurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Purchase, 0, len(r.s.purchases))
	for _, p := range r.s.purchases {
		out = append(out, p)
	}
	return out, nil
}

// ── ExpenseRepository ─────────────────────────────────────────────────────────

type fakeExpenseRepo struct{ s *memStore }

var _ repository.ExpenseRepository = (*fakeExpenseRepo)(nil)

func (r *fakeExpenseRepo) Create(entry *entity.ExpenseEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses[entry.PurchaseID] = append(r.s.expenses[entry.PurchaseID], entry)
	return nil
}

func (r *fakeExpenseRepo) GetByID(id string) (*entity.ExpenseEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, list := range r.s.expenses {
		for _, e := range list {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeExpenseRepo) ListByPurchase(purchaseID string) ([]*entity.ExpenseEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.expenses[purchaseID], nil
}

func (r *fakeExpenseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for pid, list := range r.s.expenses {
		for i, e := range list {
			if e.ID == id {
				r.s.expenses[pid] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// ── RetaceoRepository ─────────────────────────────────────────────────────────

type fakeRetaceoRepo struct{ s *memStore }

var _ repository.RetaceoRepository = (*fakeRetaceoRepo)(nil)

func (r *fakeRetaceoRepo) Create(ret *entity.Retaceo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *ret
	r.s.retaceos[ret.ID] = &cp
	return nil
}

func (r *fakeRetaceoRepo) CreateDetail(d *entity.RetaceoDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *d
	r.s.retaceoDetails[d.RetaceoID] = append(r.s.retaceoDetails[d.RetaceoID], &cp)
	return nil
}

func (r *fakeRetaceoRepo) GetByID(id string) (*entity.Retaceo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ret, ok := r.s.retaceos[id]
	if !ok {
		return nil, nil
	}
	cp := *ret
	return &cp, nil
}

func (r *fakeRetaceoRepo) GetDetailsByRetaceoID(retaceoID string) ([]*entity.RetaceoDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.retaceoDetails[retaceoID], nil
}

func (r *fakeRetaceoRepo) ListByPurchase(purchaseID string) ([]*entity.Retaceo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Retaceo
	for _, ret := range r.s.retaceos {
		if ret.PurchaseID == purchaseID {
			cp := *ret
			out = append(out, &cp)
		}
	}
	return out, nil
}

// UpdateStatus replica el UPDATE ... WHERE status = fromStatus de PostgreSQL:
// compara y cambia bajo el mismo lock, como la fila bajo el mismo row lock.
func (r *fakeRetaceoRepo) UpdateStatus(retaceoID, fromStatus, toStatus string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ret, ok := r.s.retaceos[retaceoID]
	if !ok || ret.Status != fromStatus {
		return false, nil
	}
	ret.Status = toStatus
	return true, nil
}

func (r *fakeRetaceoRepo) Delete(retaceoID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.retaceos, retaceoID)
	delete(r.s.retaceoDetails, retaceoID)
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateLandedCost(productID string, billCost, finalBillRetaceo decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[productID]; ok {
		p.BillCost = billCost
		p.FinalBillRetaceo = finalBillRetaceo
	}
	return nil
}

func (r *fakeProductRepo) UpdatePrice(productID string, price, utility decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[productID]; ok {
		p.Price = price
		p.Utility = utility
	}
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Search(normalizedTerm string, limit, offset int) ([]*entity.Product, error) {
	return r.List(limit, offset)
}

func (r *fakeProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

// ── PriceHistoryRepository ────────────────────────────────────────────────────

type fakeHistoryRepo struct{ s *memStore }

var _ repository.PriceHistoryRepository = (*fakeHistoryRepo)(nil)

func (r *fakeHistoryRepo) Append(record *entity.PriceHistoryRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *record
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.PriceHistoryRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.PriceHistoryRecord
	for _, rec := range r.s.history {
		if rec.ProductID == productID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) countByProduct(productID string) int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, rec := range r.s.history {
		if rec.ProductID == productID {
			n++
		}
	}
	return n
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback contra el mismo almacén, sin rollback.
// Suficiente para estos tests: el camino perdedor de Approve falla en el
// compare-and-swap antes de escribir ningún efecto.
type fakeTxRunner struct{ s *memStore }

var _ appretaceo.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	retaceoRepo repository.RetaceoRepository,
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
) error) error {
	return fn(&fakeRetaceoRepo{s: t.s}, &fakeProductRepo{s: t.s}, &fakeHistoryRepo{s: t.s})
}
