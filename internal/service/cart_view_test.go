package service

import (
	"errors"
	"testing"

	"github.com/cartnext/internal/models"

	"github.com/shopspring/decimal"
)

// stubProductRepo 基于内存映射的商品仓库桩
type stubProductRepo struct {
	products map[string]*models.Product
	errUUIDs map[string]error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: map[string]*models.Product{},
		errUUIDs: map[string]error{},
	}
}

func (r *stubProductRepo) add(product *models.Product) {
	r.products[product.UUID] = product
}

func (r *stubProductRepo) GetByUUID(uuid string) (*models.Product, error) {
	if err, ok := r.errUUIDs[uuid]; ok {
		return nil, err
	}
	return r.products[uuid], nil
}

func (r *stubProductRepo) ListByCategory(category string, onlyActive bool) ([]models.Product, error) {
	var result []models.Product
	for _, product := range r.products {
		if product.Category != category {
			continue
		}
		if onlyActive && !product.IsActive {
			continue
		}
		result = append(result, *product)
	}
	return result, nil
}

func money(amount float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(amount))
}

func cartWithItems(items ...models.CartItem) *models.Cart {
	cart := models.NewGuestCart("sess-1")
	for _, item := range items {
		cart.AddItem(item)
	}
	return cart
}

func TestProjectComputesLineAndGrandTotals(t *testing.T) {
	repo := newStubProductRepo()
	repo.add(&models.Product{ID: 1, UUID: "prod-1", Name: "耳机", Price: money(9.99), IsActive: true})
	repo.add(&models.Product{ID: 2, UUID: "prod-2", Name: "充电宝", Price: money(5.00), IsActive: true})
	svc := NewCartViewService(repo)

	cart := cartWithItems(
		models.CartItem{UUID: "item-1", ProductUUID: "prod-1", Price: money(9.99), Quantity: 2},
	)
	view := svc.Project(cart)
	if len(view.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(view.Items))
	}
	if view.Items[0].Total.String() != "19.98" {
		t.Fatalf("line total want 19.98 got %s", view.Items[0].Total)
	}
	if view.Total.String() != "19.98" {
		t.Fatalf("grand total want 19.98 got %s", view.Total)
	}

	cart.AddItem(models.CartItem{UUID: "item-2", ProductUUID: "prod-2", Price: money(5.00), Quantity: 1})
	view = svc.Project(cart)
	if view.Total.String() != "24.98" {
		t.Fatalf("grand total want 24.98 got %s", view.Total)
	}
}

func TestProjectOmitsMissingProducts(t *testing.T) {
	repo := newStubProductRepo()
	repo.add(&models.Product{ID: 1, UUID: "prod-1", Name: "耳机", Price: money(9.99), IsActive: true})
	svc := NewCartViewService(repo)

	// prod-2 已从目录删除，对应行项应被剔除且不计入总额
	cart := cartWithItems(
		models.CartItem{UUID: "item-1", ProductUUID: "prod-1", Price: money(9.99), Quantity: 2},
		models.CartItem{UUID: "item-2", ProductUUID: "prod-2", Price: money(5.00), Quantity: 1},
	)
	view := svc.Project(cart)
	if len(view.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(view.Items))
	}
	if view.Items[0].UUID != "item-1" {
		t.Fatalf("surviving item want item-1 got %s", view.Items[0].UUID)
	}
	if view.Total.String() != "19.98" {
		t.Fatalf("grand total want 19.98 got %s", view.Total)
	}
}

func TestProjectOmitsItemsOnLookupError(t *testing.T) {
	repo := newStubProductRepo()
	repo.add(&models.Product{ID: 1, UUID: "prod-1", Name: "耳机", Price: money(9.99), IsActive: true})
	repo.errUUIDs["prod-2"] = errors.New("connection refused")
	svc := NewCartViewService(repo)

	cart := cartWithItems(
		models.CartItem{UUID: "item-1", ProductUUID: "prod-1", Price: money(9.99), Quantity: 1},
		models.CartItem{UUID: "item-2", ProductUUID: "prod-2", Price: money(5.00), Quantity: 1},
	)
	view := svc.Project(cart)
	if len(view.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(view.Items))
	}
	if view.Total.String() != "9.99" {
		t.Fatalf("grand total want 9.99 got %s", view.Total)
	}
}

func TestProjectKeepsSnapshotAndCurrentPriceDistinct(t *testing.T) {
	repo := newStubProductRepo()
	repo.add(&models.Product{ID: 1, UUID: "prod-1", Name: "耳机", Price: money(12.50), IsActive: true})
	svc := NewCartViewService(repo)

	cart := cartWithItems(
		models.CartItem{UUID: "item-1", ProductUUID: "prod-1", Price: money(9.99), Quantity: 2},
	)
	view := svc.Project(cart)
	item := view.Items[0]
	if item.Price.String() != "9.99" {
		t.Fatalf("snapshot price want 9.99 got %s", item.Price)
	}
	if item.Product.Price.String() != "12.50" {
		t.Fatalf("current price want 12.50 got %s", item.Product.Price)
	}
	// 总额按快照价计算
	if view.Total.String() != "19.98" {
		t.Fatalf("grand total want 19.98 got %s", view.Total)
	}
}

func TestProjectEmptyCart(t *testing.T) {
	svc := NewCartViewService(newStubProductRepo())

	view := svc.Project(models.NewGuestCart("sess-1"))
	if view.UUID != "sess-1" {
		t.Fatalf("uuid want sess-1 got %s", view.UUID)
	}
	if view.Items == nil || len(view.Items) != 0 {
		t.Fatalf("items want empty slice got %v", view.Items)
	}
	if view.Total.String() != "0.00" {
		t.Fatalf("total want 0.00 got %s", view.Total)
	}
	if view.PaymentMethod != "unknown" {
		t.Fatalf("payment method want unknown got %s", view.PaymentMethod)
	}
}

func TestCustomerDisplayNameSkipsEmptyParts(t *testing.T) {
	cases := []struct {
		customer models.Customer
		want     string
	}{
		{models.Customer{FirstName: "Ivan", LastName: "Petrov", MiddleName: "Sergeevich"}, "Petrov Sergeevich Ivan"},
		{models.Customer{FirstName: "Ivan", LastName: "Petrov"}, "Petrov Ivan"},
		{models.Customer{FirstName: "Guest"}, "Guest"},
		{models.Customer{MiddleName: "  "}, ""},
	}
	for _, tc := range cases {
		got := buildCustomerView(tc.customer)
		if got.Name != tc.want {
			t.Fatalf("display name want %q got %q", tc.want, got.Name)
		}
	}
}
