package devserver

import (
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNoSuchItem   = errors.New("no such cart item")
	ErrOutOfStock   = errors.New("not enough stock")
	ErrUnknownWares = errors.New("unknown product or variant")
)

// Account is a registered user plus the credential hash. Only the
// models.User projection ever leaves the server.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Role         string
	Tier         string
}

// User returns the wire-facing profile of the account.
func (a *Account) User() models.User {
	return models.User{
		ID:               a.ID,
		Email:            a.Email,
		Name:             a.Name,
		Role:             a.Role,
		SubscriptionTier: a.Tier,
	}
}

// Store keeps the whole backend state in memory behind one mutex. The
// devserver trades granularity for simplicity; contention is not a concern
// at dev scale.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*Account // keyed by id
	byEmail  map[string]string   // email -> id
	products []models.Product
	carts    map[string]*models.Cart   // keyed by user id
	orders   map[string][]models.Order // keyed by user id, newest first
	posts    []models.Post             // newest first
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*Account),
		byEmail:  make(map[string]string),
		carts:    make(map[string]*models.Cart),
		orders:   make(map[string][]models.Order),
		now:      time.Now,
	}
}

func (s *Store) CreateAccount(name, email string, passwordHash []byte, tier string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return nil, ErrEmailTaken
	}

	a := &Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "BUYER",
		Tier:         tier,
	}
	s.accounts[a.ID] = a
	s.byEmail[email] = a.ID
	return a, nil
}

func (s *Store) AccountByEmail(email string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, false
	}
	a, ok := s.accounts[id]
	return a, ok
}

func (s *Store) AccountByID(id string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

func (s *Store) SetProducts(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func (s *Store) Products() models.ProductPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page := models.ProductPage{Products: make([]models.Product, len(s.products)), Total: len(s.products)}
	copy(page.Products, s.products)
	return page
}

// resolveWares finds the product and, when requested, its variant. Caller
// holds the lock.
func (s *Store) resolveWares(productID, variantID string) (*models.Product, *models.Variant, error) {
	for i := range s.products {
		p := &s.products[i]
		if p.ID != productID {
			continue
		}
		if variantID == "" {
			return p, nil, nil
		}
		for j := range p.Variants {
			if p.Variants[j].ID == variantID {
				return p, &p.Variants[j], nil
			}
		}
		return nil, nil, ErrUnknownWares
	}
	return nil, nil, ErrUnknownWares
}

// Cart returns a copy of the user's cart, or false when none exists yet.
func (s *Store) Cart(userID string) (models.Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, false
	}
	return copyCart(c), true
}

// AddItem puts quantity units of a product (or one of its variants) into the
// user's cart, merging with an existing line for the same choice. The unit
// price is captured at add time; the total is recomputed server-side.
func (s *Store) AddItem(userID, productID, variantID string, quantity int) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, v, err := s.resolveWares(productID, variantID)
	if err != nil {
		return models.Cart{}, err
	}

	stock := p.Stock
	price := parsePrice(p.Price)
	if v != nil {
		stock = v.Stock
		if v.Price != "" {
			price = parsePrice(v.Price)
		}
	}
	if quantity <= 0 || quantity > stock {
		return models.Cart{}, ErrOutOfStock
	}

	cart, ok := s.carts[userID]
	if !ok {
		cart = &models.Cart{ID: uuid.NewString(), Items: []models.CartItem{}}
		s.carts[userID] = cart
	}

	lineProduct := *p
	if v != nil {
		lineProduct.Variants = []models.Variant{*v}
	}

	merged := false
	for i := range cart.Items {
		if sameLine(&cart.Items[i], productID, variantID) {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ID:         uuid.NewString(),
			Quantity:   quantity,
			PriceAtAdd: price,
			Product:    lineProduct,
		})
	}

	recomputeTotal(cart)
	return copyCart(cart), nil
}

func sameLine(it *models.CartItem, productID, variantID string) bool {
	if it.Product.ID != productID {
		return false
	}
	lineVariant := ""
	if len(it.Product.Variants) == 1 {
		lineVariant = it.Product.Variants[0].ID
	}
	return lineVariant == variantID
}

func (s *Store) RemoveItem(userID, itemID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, ErrNoSuchItem
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recomputeTotal(cart)
			return copyCart(cart), nil
		}
	}
	return models.Cart{}, ErrNoSuchItem
}

func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// CreateOrder turns the user's cart into an order and empties the cart.
func (s *Store) CreateOrder(userID string, addr models.ShippingAddress) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok || len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:              uuid.NewString(),
		Status:          models.OrderPending,
		Items:           make([]models.OrderItem, 0, len(cart.Items)),
		ShippingAddress: addr,
		CreatedAt:       s.now(),
	}
	for _, it := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.NewString(),
			Quantity:  it.Quantity,
			UnitPrice: it.PriceAtAdd,
			Product:   it.Product,
		})
		order.TotalAmount += it.PriceAtAdd * float64(it.Quantity)
	}

	s.orders[userID] = append([]models.Order{order}, s.orders[userID]...)
	delete(s.carts, userID)
	return order, nil
}

func (s *Store) Orders(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Order, len(s.orders[userID]))
	copy(list, s.orders[userID])
	return list
}

// AddPost prepends a post to the feed.
func (s *Store) AddPost(author *Account, content, imageURL string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:        uuid.NewString(),
		User:      models.PostAuthor{ID: author.ID, Name: author.Name, Email: author.Email},
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: s.now(),
	}
	s.posts = append([]models.Post{post}, s.posts...)
	return post
}

// Feed returns one page of posts, newest first.
func (s *Store) Feed(limit, offset int) models.FeedPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page := models.FeedPage{Data: []models.Post{}, Total: len(s.posts), Limit: limit, Offset: offset}
	if offset >= len(s.posts) {
		return page
	}
	end := offset + limit
	if end > len(s.posts) {
		end = len(s.posts)
	}
	page.Data = append(page.Data, s.posts[offset:end]...)
	return page
}

// SetPosts replaces the feed, keeping newest-first order.
func (s *Store) SetPosts(posts []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = make([]models.Post, len(posts))
	copy(s.posts, posts)
	sort.SliceStable(s.posts, func(i, j int) bool {
		return s.posts[i].CreatedAt.After(s.posts[j].CreatedAt)
	})
}

func copyCart(c *models.Cart) models.Cart {
	out := models.Cart{ID: c.ID, Items: make([]models.CartItem, len(c.Items)), TotalPrice: c.TotalPrice}
	copy(out.Items, c.Items)
	return out
}

func recomputeTotal(c *models.Cart) {
	total := 0.0
	for _, it := range c.Items {
		total += it.PriceAtAdd * float64(it.Quantity)
	}
	c.TotalPrice = total
}

func parsePrice(price string) float64 {
	f, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0
	}
	return f
}
