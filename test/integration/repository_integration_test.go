package integration

import (
	"context"
	"testing"
	"time"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns seeded products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetAll(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, products, 4)
	})

	t.Run("GetAll with pagination", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		page, err := repo.GetAll(ctx, 3, 0)
		require.NoError(t, err)
		assert.Len(t, page, 3)

		page, err = repo.GetAll(ctx, 3, 3)
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})

	t.Run("GetByID round-trips images array", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		product, err := repo.GetByID(ctx, ids[0])
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Ankara Gown", product.Name)
		assert.Equal(t, 2500.0, product.Price)
		assert.Equal(t, []string{"https://cdn.example.com/ankara.jpg"}, product.Images)
	})

	t.Run("GetByID unknown product returns nil", func(t *testing.T) {
		product, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Search matches name and category case-insensitively", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		byName, err := repo.Search(ctx, "ankara", 10, 0)
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "Ankara Gown", byName[0].Name)

		byCategory, err := repo.Search(ctx, "MEN", 10, 0)
		require.NoError(t, err)
		// "MEN" matches both the men and women categories.
		assert.Len(t, byCategory, 3)
	})

	t.Run("Create then Update then Delete", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product := &model.Product{
			ID:        uuid.New(),
			Name:      "Agbada Set",
			Category:  "men",
			Price:     6000,
			Stock:     2,
			Images:    []string{"https://cdn.example.com/agbada.jpg"},
			Quality:   "premium",
			CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, product))

		product.Price = 5500
		product.Stock = 1
		require.NoError(t, repo.Update(ctx, product))

		got, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 5500.0, got.Price)
		assert.Equal(t, 1, got.Stock)

		require.NoError(t, repo.Delete(ctx, product.ID))

		got, err = repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCartRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCartRepository(testDB.Pool, logger)

	ctx := context.Background()

	newLine := func(owner model.CartOwner, name string, price float64) *model.CartLine {
		now := time.Now()
		return &model.CartLine{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			UserID:    owner.UserID,
			Email:     owner.Email,
			Name:      name,
			Price:     price,
			Quantity:  1,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	t.Run("Add and GetByOwner", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		userID := uuid.New()
		owner := model.CartOwner{UserID: &userID, Email: "ada@example.com"}

		require.NoError(t, repo.Add(ctx, newLine(owner, "Ankara Gown", 2500)))
		require.NoError(t, repo.Add(ctx, newLine(owner, "Plain Shirt", 1000)))

		lines, err := repo.GetByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("owners do not see each other's lines", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		adaID, obiID := uuid.New(), uuid.New()
		ada := model.CartOwner{UserID: &adaID, Email: "ada@example.com"}
		obi := model.CartOwner{UserID: &obiID, Email: "obi@example.com"}

		require.NoError(t, repo.Add(ctx, newLine(ada, "Ankara Gown", 2500)))

		lines, err := repo.GetByOwner(ctx, obi)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("UpdateQuantity and Remove", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		userID := uuid.New()
		owner := model.CartOwner{UserID: &userID, Email: "ada@example.com"}

		line := newLine(owner, "Ankara Gown", 2500)
		require.NoError(t, repo.Add(ctx, line))

		require.NoError(t, repo.UpdateQuantity(ctx, owner, line.ProductID, 3))

		got, err := repo.GetLine(ctx, owner, line.ProductID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 3, got.Quantity)

		require.NoError(t, repo.Remove(ctx, owner, line.ProductID))

		got, err = repo.GetLine(ctx, owner, line.ProductID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(testDB.Pool, logger)

	ctx := context.Background()

	newOrder := func(email string, status model.OrderStatus) *model.Order {
		return &model.Order{
			ID: uuid.New(),
			Items: []model.OrderItem{
				{ProductID: uuid.New(), Name: "Ankara Gown", Category: "women", Price: 2500, Quantity: 1},
				{ProductID: uuid.New(), Name: "Plain Shirt", Category: "men", Price: 1000, Quantity: 2},
			},
			CustomerName:  "Ada Obi",
			CustomerEmail: email,
			CustomerPhone: "08031234567",
			Address:       "12 Allen Avenue, Ikeja",
			OrderDate:     "2026-08-31",
			TotalAmount:   4500,
			AmountPaid:    4500,
			IsPaid:        true,
			Status:        status,
			CreatedAt:     time.Now(),
		}
	}

	t.Run("Create round-trips line snapshots", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder("ada@example.com", model.StatusApproved)
		require.NoError(t, repo.Create(ctx, order))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, order.CustomerEmail, got.CustomerEmail)
		assert.True(t, got.IsPaid)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "Ankara Gown", got.Items[0].Name)
		assert.Equal(t, 2, got.Items[1].Quantity)
	})

	t.Run("GetByEmail returns only the customer's orders", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		require.NoError(t, repo.Create(ctx, newOrder("ada@example.com", model.StatusApproved)))
		require.NoError(t, repo.Create(ctx, newOrder("ada@example.com", model.StatusSent)))
		require.NoError(t, repo.Create(ctx, newOrder("obi@example.com", model.StatusApproved)))

		orders, err := repo.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("UpdateStatus persists the transition", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder("ada@example.com", model.StatusApproved)
		require.NoError(t, repo.Create(ctx, order))

		require.NoError(t, repo.UpdateStatus(ctx, order.ID, model.StatusCancelled))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.StatusCancelled, got.Status)
	})
}

func TestUserRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewUserRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByEmail", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		user := &model.User{
			ID:           uuid.New(),
			Name:         "Ada Obi",
			Email:        "ada@example.com",
			PasswordHash: "$2a$10$hashhashhashhashhashhashhashhashhashha",
			CreatedAt:    time.Now(),
		}
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
	})

	t.Run("duplicate email maps to domain error", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedUser(t, testDB.Pool, "Ada Obi", "ada@example.com")

		err := repo.Create(ctx, &model.User{
			ID:           uuid.New(),
			Name:         "Other Ada",
			Email:        "ada@example.com",
			PasswordHash: "x",
			CreatedAt:    time.Now(),
		})
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("GetByEmail unknown user returns nil", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestContactRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewContactRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetByEmail returns the newest submission", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		old := &model.ContactProfile{
			ID:            uuid.New(),
			CustomerName:  "Ada Obi",
			CustomerEmail: "ada@example.com",
			Address:       "old address",
			CreatedAt:     time.Now().Add(-time.Hour),
		}
		latest := &model.ContactProfile{
			ID:            uuid.New(),
			CustomerName:  "Ada Obi",
			CustomerEmail: "ada@example.com",
			CustomerPhone: "08031234567",
			Address:       "12 Allen Avenue, Ikeja",
			CreatedAt:     time.Now(),
		}
		require.NoError(t, repo.Create(ctx, old))
		require.NoError(t, repo.Create(ctx, latest))

		got, err := repo.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, latest.ID, got.ID)
		assert.Equal(t, "12 Allen Avenue, Ikeja", got.Address)
	})

	t.Run("GetByEmail without submissions returns nil", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRequestRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewRequestRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByUser", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		userID := uuid.New()

		request := &model.ProductRequest{
			ID:                uuid.New(),
			UserID:            userID,
			InspirationImages: []string{"https://cdn.example.com/ref1.jpg", "https://cdn.example.com/ref2.jpg"},
			Budget:            "15000-20000",
			ExpectedDate:      "2026-10-01",
			ContactName:       "Ada Obi",
			ContactEmail:      "ada@example.com",
			Gender:            "female",
			ClothingSize:      "M",
			AdditionalInfo:    "lace details on the sleeves",
			SubmittedAt:       time.Now(),
		}
		require.NoError(t, repo.Create(ctx, request))

		requests, err := repo.GetByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, request.InspirationImages, requests[0].InspirationImages)
		assert.Equal(t, "lace details on the sleeves", requests[0].AdditionalInfo)
	})

	t.Run("UpdateAdditionalInfo", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		userID := uuid.New()

		request := &model.ProductRequest{
			ID:                uuid.New(),
			UserID:            userID,
			InspirationImages: []string{},
			Budget:            "5000",
			SubmittedAt:       time.Now(),
		}
		require.NoError(t, repo.Create(ctx, request))

		require.NoError(t, repo.UpdateAdditionalInfo(ctx, request.ID, "changed my mind about the colour"))

		got, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "changed my mind about the colour", got.AdditionalInfo)
	})

	t.Run("Delete removes the request", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		userID := uuid.New()

		request := &model.ProductRequest{
			ID:                uuid.New(),
			UserID:            userID,
			InspirationImages: []string{},
			SubmittedAt:       time.Now(),
		}
		require.NoError(t, repo.Create(ctx, request))
		require.NoError(t, repo.Delete(ctx, request.ID))

		got, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStatsRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	statsRepo := repository.NewStatsRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	paymentRepo := repository.NewPaymentRepository(testDB.Pool, logger)

	ctx := context.Background()

	CleanupDB(t, testDB.Pool)
	SeedUser(t, testDB.Pool, "Ada Obi", "ada@example.com")
	SeedUser(t, testDB.Pool, "Obi Ade", "obi@example.com")

	statuses := []model.OrderStatus{
		model.StatusPending, model.StatusSent, model.StatusCompleted, model.StatusCancelled,
	}
	for _, status := range statuses {
		order := &model.Order{
			ID:            uuid.New(),
			Items:         []model.OrderItem{{ProductID: uuid.New(), Name: "Ankara Gown", Price: 2500, Quantity: 1}},
			CustomerName:  "Ada Obi",
			CustomerEmail: "ada@example.com",
			OrderDate:     "2026-08-31",
			TotalAmount:   2500,
			AmountPaid:    2500,
			IsPaid:        true,
			Status:        status,
			CreatedAt:     time.Now(),
		}
		require.NoError(t, orderRepo.Create(ctx, order))
	}

	for _, amount := range []float64{2500, 1000.50} {
		payment := &model.Payment{
			ID:            uuid.New(),
			TransactionID: 84512,
			TxRef:         "MF-1700000000000",
			Amount:        amount,
			Currency:      "NGN",
			Status:        "completed",
			CustomerEmail: "ada@example.com",
			PaidAt:        time.Now(),
		}
		require.NoError(t, paymentRepo.Create(ctx, payment))
	}

	total, err := statsRepo.CountOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	active, err := statsRepo.CountOrdersByStatus(ctx, model.StatusPending, model.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)

	users, err := statsRepo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	revenue, err := statsRepo.SumPayments(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 3500.50, revenue, 0.001)
}

func TestSubscriptionRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewSubscriptionRepository(testDB.Pool, logger)

	ctx := context.Background()

	CleanupDB(t, testDB.Pool)

	// Duplicate submissions are stored as-is.
	for i := 0; i < 2; i++ {
		sub := &model.Subscription{
			ID:               uuid.New(),
			Email:            "ada@example.com",
			SubscriptionDate: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, sub))
	}

	subs, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}
