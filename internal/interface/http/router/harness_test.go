package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appauth "bookshop/internal/application/auth"
	apporder "bookshop/internal/application/order"
	"bookshop/internal/domain/book"
	"bookshop/internal/domain/cart"
	"bookshop/internal/domain/category"
	"bookshop/internal/domain/user"
	"bookshop/internal/infrastructure/persistence/memory"
	"bookshop/internal/infrastructure/persistence/mysql"
	"bookshop/internal/interface/http/handler"
	"bookshop/internal/interface/http/middleware"
	"bookshop/internal/interface/http/router"
	"bookshop/pkg/hash"
	"bookshop/pkg/jwt"
)

// server is the in-process application: real router, real services, real
// repositories over an in-memory database. Only Redis is swapped for the
// in-memory blacklist.
type server struct {
	engine     *gin.Engine
	db         *gorm.DB
	tokens     *jwt.Manager
	users      user.Repository
	books      book.Repository
	categories category.Repository
}

func newTestServer(t *testing.T) *server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, mysql.Migrate(db))

	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)

	tokens := jwt.NewManager("test-secret", time.Hour)
	blacklist := memory.NewTokenBlacklist()

	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo, categoryRepo)
	categoryService := category.NewService(categoryRepo)
	cartService := cart.NewService(cartRepo, bookRepo, txManager)
	authUseCase := appauth.NewUseCase(userService, tokens, blacklist)
	orderUseCase := apporder.NewUseCase(cartRepo, orderRepo, bookRepo, txManager)

	engine := router.New(gin.TestMode, 5*time.Second, router.Handlers{
		Auth:     handler.NewAuthHandler(authUseCase),
		Book:     handler.NewBookHandler(bookService),
		Category: handler.NewCategoryHandler(categoryService),
		Cart:     handler.NewCartHandler(cartService),
		Order:    handler.NewOrderHandler(orderUseCase),
	}, middleware.NewAuthMiddleware(tokens, blacklist))

	return &server{
		engine:     engine,
		db:         db,
		tokens:     tokens,
		users:      userRepo,
		books:      bookRepo,
		categories: categoryRepo,
	}
}

// request performs one in-process HTTP request. body may be nil, a raw
// string or anything JSON-serializable.
func (s *server) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// seedUser inserts an account directly and mints a token for it. password
// is always "correct-horse".
func (s *server) seedUser(t *testing.T, email string, roles ...string) (uint, string) {
	t.Helper()

	hashed, err := hash.Generate("correct-horse")
	require.NoError(t, err)

	u := &user.User{Email: email, Password: hashed, Nickname: "test", Roles: roles}
	require.NoError(t, s.users.Create(context.Background(), u))

	token, err := s.tokens.Generate(u.ID, u.Roles)
	require.NoError(t, err)
	return u.ID, token
}

func (s *server) seedCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	c := &category.Category{Name: name}
	require.NoError(t, s.categories.Create(context.Background(), c))
	return c
}

func (s *server) seedBook(t *testing.T, title, isbn string, price float64, categoryIDs ...uint) *book.Book {
	t.Helper()
	b := &book.Book{
		Title:       title,
		Author:      "Author",
		ISBN:        isbn,
		Price:       decimal.NewFromFloat(price),
		CategoryIDs: categoryIDs,
	}
	require.NoError(t, s.books.Create(context.Background(), b))
	return b
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
