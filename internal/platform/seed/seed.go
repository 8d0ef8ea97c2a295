// Package seed loads demo fixtures into freshly built stores at startup.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Apurer/storefront-api/internal/admin"
	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
	orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"
	paymentdomain "github.com/Apurer/storefront-api/internal/domains/payments/domain"
	productdomain "github.com/Apurer/storefront-api/internal/domains/products/domain"
	saveddomain "github.com/Apurer/storefront-api/internal/domains/saveditems/domain"
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the on-disk layout of a seed file.
type Fixtures struct {
	Users      []User      `yaml:"users"`
	Products   []Product   `yaml:"products"`
	Orders     []Order     `yaml:"orders"`
	Payments   []Payment   `yaml:"payments"`
	Activities []Activity  `yaml:"activities"`
	SavedItems []SavedItem `yaml:"savedItems"`
}

// Record carries the fields every fixture shares.
type Record struct {
	ID        string    `yaml:"id"`
	CreatedAt time.Time `yaml:"createdAt"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

type User struct {
	Record   `yaml:",inline"`
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type Product struct {
	Record      `yaml:",inline"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Stock       int     `yaml:"stock"`
}

type Order struct {
	Record     `yaml:",inline"`
	UserID     string  `yaml:"userId"`
	ProductID  string  `yaml:"productId"`
	Quantity   int     `yaml:"quantity"`
	TotalPrice float64 `yaml:"totalPrice"`
	Status     string  `yaml:"status"`
}

type Payment struct {
	Record  `yaml:",inline"`
	OrderID string  `yaml:"orderId"`
	Amount  float64 `yaml:"amount"`
	Status  string  `yaml:"status"`
	Method  string  `yaml:"method"`
}

type Activity struct {
	Record      `yaml:",inline"`
	UserID      string         `yaml:"userId"`
	Type        string         `yaml:"type"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Metadata    map[string]any `yaml:"metadata"`
}

type SavedItem struct {
	Record        `yaml:",inline"`
	UserID        string  `yaml:"userId"`
	ProductID     string  `yaml:"productId"`
	ProductName   string  `yaml:"productName"`
	ProductImage  string  `yaml:"productImage"`
	Price         float64 `yaml:"price"`
	OriginalPrice float64 `yaml:"originalPrice"`
	InStock       bool    `yaml:"inStock"`
	Discount      int     `yaml:"discount"`
}

// Default returns the fixtures compiled into the binary.
func Default() (Fixtures, error) {
	return Decode(bytes.NewReader(defaultFixtures))
}

// LoadFile reads fixtures from path, or the compiled-in fixtures when path is
// empty.
func LoadFile(path string) (Fixtures, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML fixture document. Unknown keys are rejected.
func Decode(r io.Reader) (Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return fx, nil
}

// Credentials receives the password hash of every seeded account.
type Credentials struct {
	Store  authports.CredentialStore
	Hasher authports.PasswordHasher
}

// Apply loads fx into stores. Accounts with a password get a credential
// entry when creds.Store is set.
func Apply(ctx context.Context, fx Fixtures, stores admin.Stores, creds Credentials) error {
	users := make([]projection.Projection[userdomain.User], 0, len(fx.Users))
	for _, u := range fx.Users {
		users = append(users, record(u.Record, userdomain.User{
			Email: u.Email,
			Name:  u.Name,
			Role:  userdomain.Role(u.Role),
		}))
	}
	if err := stores.Users.Seed(users...); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedPasswords(ctx, fx.Users, creds); err != nil {
		return err
	}

	products := make([]projection.Projection[productdomain.Product], 0, len(fx.Products))
	for _, p := range fx.Products {
		products = append(products, record(p.Record, productdomain.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
		}))
	}
	if err := stores.Products.Seed(products...); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	orders := make([]projection.Projection[orderdomain.Order], 0, len(fx.Orders))
	for _, o := range fx.Orders {
		orders = append(orders, record(o.Record, orderdomain.Order{
			UserID:     o.UserID,
			ProductID:  o.ProductID,
			Quantity:   o.Quantity,
			TotalPrice: o.TotalPrice,
			Status:     orderdomain.Status(o.Status),
		}))
	}
	if err := stores.Orders.Seed(orders...); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	payments := make([]projection.Projection[paymentdomain.Payment], 0, len(fx.Payments))
	for _, p := range fx.Payments {
		payments = append(payments, record(p.Record, paymentdomain.Payment{
			OrderID: p.OrderID,
			Amount:  p.Amount,
			Status:  paymentdomain.Status(p.Status),
			Method:  p.Method,
		}))
	}
	if err := stores.Payments.Seed(payments...); err != nil {
		return fmt.Errorf("seed payments: %w", err)
	}

	activities := make([]projection.Projection[activitydomain.Activity], 0, len(fx.Activities))
	for _, a := range fx.Activities {
		activities = append(activities, record(a.Record, activitydomain.Activity{
			UserID:      a.UserID,
			Type:        activitydomain.Type(a.Type),
			Title:       a.Title,
			Description: a.Description,
			Metadata:    a.Metadata,
		}))
	}
	if err := stores.Activity.Seed(activities...); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}

	saved := make([]projection.Projection[saveddomain.SavedItem], 0, len(fx.SavedItems))
	for _, s := range fx.SavedItems {
		saved = append(saved, record(s.Record, saveddomain.SavedItem{
			UserID:        s.UserID,
			ProductID:     s.ProductID,
			ProductName:   s.ProductName,
			ProductImage:  s.ProductImage,
			Price:         s.Price,
			OriginalPrice: s.OriginalPrice,
			InStock:       s.InStock,
			Discount:      s.Discount,
		}))
	}
	if err := stores.SavedItems.Seed(saved...); err != nil {
		return fmt.Errorf("seed saved items: %w", err)
	}
	return nil
}

func seedPasswords(ctx context.Context, users []User, creds Credentials) error {
	if creds.Store == nil || creds.Hasher == nil {
		return nil
	}
	// bcrypt is slow on purpose; equal passwords share one hash.
	hashes := map[string]string{}
	for _, u := range users {
		if u.Password == "" {
			continue
		}
		hash, ok := hashes[u.Password]
		if !ok {
			var err error
			if hash, err = creds.Hasher.Hash(u.Password); err != nil {
				return fmt.Errorf("hash password of user %q: %w", u.ID, err)
			}
			hashes[u.Password] = hash
		}
		if err := creds.Store.Save(ctx, u.ID, hash); err != nil {
			return fmt.Errorf("save credentials of user %q: %w", u.ID, err)
		}
	}
	return nil
}

func record[T any](r Record, entity T) projection.Projection[T] {
	return projection.Projection[T]{
		ID:     r.ID,
		Entity: entity,
		Metadata: projection.Metadata{
			CreatedAt: r.CreatedAt.UTC(),
			UpdatedAt: r.UpdatedAt.UTC(),
		},
	}
}
