package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

func newTestStore(t *testing.T) (*Store, kvstore.KV, *events.Bus) {
	t.Helper()
	kv := kvstore.Memory()
	bus := events.NewBus()
	s := New(kv, bus)
	s.now = func() time.Time {
		return time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return s, kv, bus
}

func item(productID, size, color string, qty int, price int64) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Size:      size,
		Color:     color,
		Quantity:  qty,
		Price:     decimal.NewFromInt(price),
	}
}

func TestAddToCartCoalescesSameLine(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddToCart(item("p1", "M", "Black", 2, 1299))
	s.AddToCart(item("p1", "M", "Black", 3, 1299))

	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, 5, cart[0].Quantity)

	s.AddToCart(item("p1", "L", "Black", 1, 1299))
	require.Len(t, s.Cart(), 2)
}

func TestUpdateCartItem(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddToCart(item("p1", "M", "Black", 2, 1299))
	s.AddToCart(item("p2", "L", "Navy", 1, 2799))

	s.UpdateCartItem("p1", "M", "Black", 7)
	cart := s.Cart()
	require.Len(t, cart, 2)
	require.Equal(t, 7, cart[0].Quantity)
	require.True(t, cart[0].Price.Equal(decimal.NewFromInt(1299)))

	s.UpdateCartItem("p1", "M", "Black", 0)
	cart = s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, "p2", cart[0].ProductID)

	// unknown line: no-op
	s.UpdateCartItem("p9", "M", "Black", 3)
	require.Len(t, s.Cart(), 1)
}

func TestRemoveFromCartMatchesFullTriple(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddToCart(item("p1", "M", "Black", 2, 1299))
	s.AddToCart(item("p1", "M", "White", 1, 1299))

	s.RemoveFromCart("p1", "M", "Black")
	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, "White", cart[0].Color)
}

func TestClearCartDropsTheKey(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.AddToCart(item("p1", "M", "Black", 2, 1299))
	s.ClearCart()
	require.Empty(t, s.Cart())
	_, ok := kv.Get("cart")
	require.False(t, ok)
}

func TestCartMutationsPublish(t *testing.T) {
	s, _, bus := newTestStore(t)
	var seen int
	cancel := bus.Subscribe(events.TopicCart, func(string) { seen++ })
	defer cancel()

	s.AddToCart(item("p1", "M", "Black", 1, 1299))
	s.UpdateCartItem("p1", "M", "Black", 2)
	s.ClearCart()
	require.Equal(t, 3, seen)
}

func TestToggleWishlistIsInvolution(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.ToggleWishlist("u1", "p1")
	require.Equal(t, []string{"p1"}, s.Wishlist("u1"))

	s.ToggleWishlist("u1", "p2")
	s.ToggleWishlist("u1", "p2")
	require.Equal(t, []string{"p1"}, s.Wishlist("u1"))

	s.ToggleWishlist("u1", "p1")
	require.Empty(t, s.Wishlist("u1"))

	// per-user isolation
	require.Empty(t, s.Wishlist("u2"))
}

func seedCoupon(s *Store, c models.Coupon) {
	if c.ExpiryDate.IsZero() {
		c.ExpiryDate = time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	s.SaveCoupon(c)
}

func TestApplyCouponPercentageWithCap(t *testing.T) {
	s, _, _ := newTestStore(t)
	maxDiscount := decimal.NewFromInt(500)
	seedCoupon(s, models.Coupon{
		ID: "c1", Code: "WELCOME10", Active: true,
		Type:        models.CouponPercentage,
		Discount:    decimal.NewFromInt(10),
		MinPurchase: decimal.NewFromInt(2000),
		MaxDiscount: &maxDiscount,
	})

	res := s.ApplyCoupon("welcome10", decimal.NewFromInt(10000))
	require.True(t, res.Valid)
	require.True(t, res.Discount.Equal(decimal.NewFromInt(500)), "10 percent of 10000 clamps to the cap")
	require.Equal(t, "Coupon applied successfully!", res.Message)

	res = s.ApplyCoupon("WELCOME10", decimal.NewFromInt(4000))
	require.True(t, res.Valid)
	require.True(t, res.Discount.Equal(decimal.NewFromInt(400)))
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedCoupon(s, models.Coupon{
		ID: "c1", Code: "WELCOME10", Active: true,
		Type:        models.CouponPercentage,
		Discount:    decimal.NewFromInt(10),
		MinPurchase: decimal.NewFromInt(2000),
	})

	res := s.ApplyCoupon("WELCOME10", decimal.NewFromInt(1000))
	require.False(t, res.Valid)
	require.True(t, res.Discount.IsZero())
	require.Contains(t, res.Message, "2000")
}

func TestApplyCouponExpired(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedCoupon(s, models.Coupon{
		ID: "c1", Code: "OLD", Active: true,
		Type:        models.CouponFixed,
		Discount:    decimal.NewFromInt(100),
		MinPurchase: decimal.Zero,
		ExpiryDate:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	})

	res := s.ApplyCoupon("OLD", decimal.NewFromInt(100000))
	require.False(t, res.Valid)
	require.Equal(t, "Coupon has expired", res.Message)
}

func TestApplyCouponFixedIsUncapped(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedCoupon(s, models.Coupon{
		ID: "c2", Code: "FLAT500", Active: true,
		Type:        models.CouponFixed,
		Discount:    decimal.NewFromInt(500),
		MinPurchase: decimal.NewFromInt(5000),
	})

	res := s.ApplyCoupon("FLAT500", decimal.NewFromInt(6000))
	require.True(t, res.Valid)
	require.True(t, res.Discount.Equal(decimal.NewFromInt(500)))
}

func TestApplyCouponUnknownOrInactive(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedCoupon(s, models.Coupon{
		ID: "c1", Code: "HIDDEN", Active: false,
		Type: models.CouponFixed, Discount: decimal.NewFromInt(100),
	})

	for _, code := range []string{"NOPE", "HIDDEN"} {
		res := s.ApplyCoupon(code, decimal.NewFromInt(100000))
		require.False(t, res.Valid)
		require.Equal(t, "Invalid coupon code", res.Message)
	}
}

func TestSaveOrderPrependsAndFiltersByUser(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SaveOrder(models.Order{ID: "o1", UserID: "u1"})
	s.SaveOrder(models.Order{ID: "o2", UserID: "u2"})
	s.SaveOrder(models.Order{ID: "o3", UserID: "u1"})

	all := s.Orders()
	require.Equal(t, []string{"o3", "o2", "o1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	u1 := s.UserOrders("u1")
	require.Len(t, u1, 2)
	require.Equal(t, "o3", u1[0].ID)
	require.Equal(t, "o1", u1[1].ID)

	require.Empty(t, s.UserOrders("u3"))
}

func TestUpdateOrderStatus(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SaveOrder(models.Order{ID: "o1", UserID: "u1", OrderStatus: models.OrderPending})

	s.UpdateOrderStatus("o1", models.OrderShipped)
	o, ok := s.FindOrder("o1")
	require.True(t, ok)
	require.Equal(t, models.OrderShipped, o.OrderStatus)
	require.Equal(t, s.now(), o.UpdatedAt)

	// no transition guard: backwards moves are allowed
	s.UpdateOrderStatus("o1", models.OrderPending)
	o, _ = s.FindOrder("o1")
	require.Equal(t, models.OrderPending, o.OrderStatus)
}

func TestUpdateOrderStatusUnknownIDIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SaveOrder(models.Order{ID: "o1", UserID: "u1", OrderStatus: models.OrderPending})

	s.UpdateOrderStatus("missing", models.OrderDelivered)
	orders := s.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, models.OrderPending, orders[0].OrderStatus)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s, _, _ := newTestStore(t)

	seedCoupon(s, models.Coupon{ID: "c1", Code: "A", Type: models.CouponFixed, Discount: decimal.NewFromInt(1)})
	seedCoupon(s, models.Coupon{ID: "c2", Code: "B", Type: models.CouponFixed, Discount: decimal.NewFromInt(2)})
	s.DeleteCoupon("c1")
	coupons := s.Coupons()
	require.Len(t, coupons, 1)
	require.Equal(t, "c2", coupons[0].ID)

	s.SaveAddress("u1", models.Address{ID: "a1", City: "Pune"})
	s.SaveAddress("u1", models.Address{ID: "a2", City: "Mumbai"})
	s.DeleteAddress("u1", "a1")
	addrs := s.Addresses("u1")
	require.Len(t, addrs, 1)
	require.Equal(t, "a2", addrs[0].ID)

	s.SaveProduct(models.Product{ID: "x1", Name: "One"})
	s.DeleteProduct("x1")
	for _, p := range s.Products() {
		require.NotEqual(t, "x1", p.ID)
	}

	// orders are untouched by any of the deletes above
	s.SaveOrder(models.Order{ID: "o1", UserID: "u1"})
	s.DeleteCoupon("c2")
	require.Len(t, s.Orders(), 1)
}

func TestSaveAddressUpsertsByID(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SaveAddress("u1", models.Address{ID: "a1", City: "Pune"})
	s.SaveAddress("u1", models.Address{ID: "a2", City: "Delhi"})
	s.SaveAddress("u1", models.Address{ID: "a1", City: "Mumbai"})

	addrs := s.Addresses("u1")
	require.Len(t, addrs, 2)
	require.Equal(t, "a1", addrs[0].ID, "replaced in place, position kept")
	require.Equal(t, "Mumbai", addrs[0].City)

	require.Empty(t, s.Addresses("u2"))
}

func TestProductsFallbackOnlyWhenKeyAbsent(t *testing.T) {
	s, kv, _ := newTestStore(t)

	require.Equal(t, DefaultCatalog(), s.Products())

	kvstore.Save(kv, "products", []models.Product{})
	require.Empty(t, s.Products(), "a stored empty catalog is not absence")
}

func TestSaveProductMaterializesCatalog(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.SaveProduct(models.Product{ID: "p1", Name: "Edited Tee"})

	_, ok := kv.Get("products")
	require.True(t, ok)
	p, ok := s.FindProduct("p1")
	require.True(t, ok)
	require.Equal(t, "Edited Tee", p.Name)
	require.Len(t, s.Products(), len(DefaultCatalog()))
}

func TestSaveUserUpsertsByEmailOrPhone(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SaveUser(models.User{ID: "u1", Email: "a@x.com", Phone: "111"})
	s.SaveUser(models.User{ID: "u2", Email: "b@x.com", Phone: "222"})

	// same phone, new email: replaces u1 rather than adding a third record
	s.SaveUser(models.User{ID: "u1", Email: "a2@x.com", Phone: "111", IsBlocked: true})
	users := s.Users()
	require.Len(t, users, 2)
	require.Equal(t, "a2@x.com", users[0].Email)
	require.True(t, users[0].IsBlocked)

	u, ok := s.FindUserByPhone("222")
	require.True(t, ok)
	require.Equal(t, "u2", u.ID)
}

func TestValidatePassword(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SaveUser(models.User{ID: "u1", Email: "a@x.com", Phone: "111", Password: "secret"})

	u, ok := s.ValidatePassword("a@x.com", "secret")
	require.True(t, ok)
	require.Equal(t, "u1", u.ID)

	_, ok = s.ValidatePassword("a@x.com", "wrong")
	require.False(t, ok)
	_, ok = s.ValidatePassword("nobody@x.com", "secret")
	require.False(t, ok)
}

func TestCurrentUserSlot(t *testing.T) {
	s, _, bus := newTestStore(t)
	var authEvents int
	cancel := bus.Subscribe(events.TopicAuth, func(string) { authEvents++ })
	defer cancel()

	_, ok := s.CurrentUser()
	require.False(t, ok)

	s.SetCurrentUser(models.User{ID: "u1", Email: "a@x.com"})
	u, ok := s.CurrentUser()
	require.True(t, ok)
	require.Equal(t, "u1", u.ID)

	s.ClearCurrentUser()
	_, ok = s.CurrentUser()
	require.False(t, ok)
	require.Equal(t, 2, authEvents)
}

func TestNotifications(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddNotification(models.Notification{ID: "n1", UserID: "u1", Title: "first"})
	s.AddNotification(models.Notification{ID: "n2", UserID: "u1", Title: "second"})
	s.AddNotification(models.Notification{ID: "n3", UserID: "u2"})

	list := s.Notifications("u1")
	require.Len(t, list, 2)
	require.Equal(t, "n2", list[0].ID, "newest first")

	s.MarkNotificationRead("u1", "n1")
	list = s.Notifications("u1")
	require.True(t, list[1].Read)
	require.False(t, list[0].Read)

	// unknown ID: nothing changes
	s.MarkNotificationRead("u1", "missing")
	require.Len(t, s.Notifications("u1"), 2)
}

func TestCorruptStoredTextLoadsAsEmpty(t *testing.T) {
	s, kv, _ := newTestStore(t)
	kv.Put("cart", "{definitely not json")
	require.Empty(t, s.Cart())

	kv.Put("orders", "42")
	require.Empty(t, s.Orders())
}

func TestSeeds(t *testing.T) {
	s, kv, _ := newTestStore(t)

	s.EnsureAdmin()
	s.EnsureAdmin()
	admin, ok := s.FindUserByEmail("admin@vocano.com")
	require.True(t, ok)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.Len(t, s.Users(), 1)

	s.EnsureCoupons()
	first := s.Coupons()
	require.Len(t, first, 3)
	s.DeleteCoupon(first[0].ID)
	s.EnsureCoupons()
	require.Len(t, s.Coupons(), 2, "seeding only applies while the key is absent")

	s.SeedDemoCatalog()
	_, ok = kv.Get("products")
	require.True(t, ok)
	require.Len(t, s.Products(), len(DefaultCatalog()))
}
