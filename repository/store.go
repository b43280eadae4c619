package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"storefront-service/models"

	"go.uber.org/zap"
)

// Collection file names inside the data directory.
const (
	ProductsFile   = "products.json"
	CategoriesFile = "categories.json"
	OrdersFile     = "orders.json"
	UsersFile      = "users.json"
)

// Store persists each collection as a pretty-printed JSON array on disk.
// There is no locking: concurrent read-modify-write cycles against the
// same collection race and the later writer wins.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Init creates the data directory and seeds the default catalog. Seeding
// happens only when a file is absent; existing data is never touched.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	now := time.Now().UTC()
	if !s.exists(ProductsFile) {
		if err := s.SaveProducts(seedProducts(now)); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}
	if !s.exists(CategoriesFile) {
		if err := s.SaveCategories(seedCategories()); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
	}
	if !s.exists(OrdersFile) {
		if err := s.SaveOrders([]models.Order{}); err != nil {
			return fmt.Errorf("failed to init orders: %w", err)
		}
	}
	if !s.exists(UsersFile) {
		if err := s.SaveUsers([]models.User{}); err != nil {
			return fmt.Errorf("failed to init users: %w", err)
		}
	}

	zap.L().Info("Store initialized", zap.String("dir", s.dir))
	return nil
}

func (s *Store) Products() ([]models.Product, error) {
	var products []models.Product
	if err := s.readFile(ProductsFile, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *Store) SaveProducts(products []models.Product) error {
	return s.writeFile(ProductsFile, products)
}

func (s *Store) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.readFile(CategoriesFile, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *Store) SaveCategories(categories []models.Category) error {
	return s.writeFile(CategoriesFile, categories)
}

func (s *Store) Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.readFile(OrdersFile, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *Store) SaveOrders(orders []models.Order) error {
	return s.writeFile(OrdersFile, orders)
}

func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	if err := s.readFile(UsersFile, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *Store) SaveUsers(users []models.User) error {
	return s.writeFile(UsersFile, users)
}

// readFile unmarshals a collection into v. A missing or unparseable
// file reads as an empty collection so a fresh deployment works without
// any fixture.
func (s *Store) readFile(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			zap.L().Warn("Collection file missing, treating as empty", zap.String("file", name))
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		zap.L().Warn("Collection file corrupt, treating as empty",
			zap.String("file", name), zap.Error(err))
		return nil
	}
	return nil
}

// writeFile overwrites a collection. Files stay human-readable, matching
// what an operator would hand-edit.
func (s *Store) writeFile(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *Store) exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

func seedProducts(now time.Time) []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "iPhone 15 Pro",
			Price:       99990,
			Description: "Новый iPhone с революционным дизайном и камерой",
			Image:       "📱",
			Category:    "electronics",
			InStock:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			Name:        "MacBook Air M2",
			Price:       129990,
			Description: "Мощный и легкий ноутбук для работы и творчества",
			Image:       "💻",
			Category:    "laptops",
			InStock:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          3,
			Name:        "AirPods Pro",
			Price:       24990,
			Description: "Беспроводные наушники с активным шумоподавлением",
			Image:       "🎧",
			Category:    "audio",
			InStock:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "all", Name: "Все товары", Icon: "🏠"},
		{ID: "electronics", Name: "Электроника", Icon: "📱"},
		{ID: "laptops", Name: "Ноутбуки", Icon: "💻"},
		{ID: "audio", Name: "Аудио", Icon: "🎧"},
		{ID: "wearables", Name: "Гаджеты", Icon: "⌚"},
	}
}
