package main

import (
	"context"
	"flag"
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"

	"github.com/jaswdr/faker"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// 開発用のデータ投入ツール。usersとordersを合成データで埋める。
// 本番の取り込みバッチの代わりで、APIそのものは書き込みを持たない。
func main() {
	var (
		customerCount = flag.Int("customers", 1000, "number of customers to insert")
		orderCount    = flag.Int("orders", 5000, "number of orders to insert")
		batchSize     = flag.Int("batch", 500, "batch size for bulk inserts")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Customer{}, &model.Order{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	ctx := context.Background()
	start := time.Now()

	if err := seedCustomers(ctx, gormDB, *customerCount, *batchSize); err != nil {
		log.Fatalf("failed to seed customers: %v", err)
	}
	if err := seedOrders(ctx, gormDB, *customerCount, *orderCount, *batchSize); err != nil {
		log.Fatalf("failed to seed orders: %v", err)
	}

	log.Printf("dataset ready (customers=%d orders=%d) in %s", *customerCount, *orderCount, time.Since(start))
}

// 既に十分なデータがあれば何もしない（再実行しても増殖させない）。
func seedCustomers(ctx context.Context, gormDB *gorm.DB, count int, batchSize int) error {
	var existing int64
	if err := gormDB.WithContext(ctx).Model(&model.Customer{}).Count(&existing).Error; err != nil {
		return err
	}
	if int(existing) >= count {
		return nil
	}

	fake := faker.New()
	batch := make([]model.Customer, 0, batchSize)
	toCreate := count - int(existing)

	for i := 0; i < toCreate; i++ {
		batch = append(batch, buildCustomer(fake))

		if len(batch) == batchSize || i == toCreate-1 {
			if err := gormDB.WithContext(ctx).Create(&batch).Error; err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	return nil
}

func seedOrders(ctx context.Context, gormDB *gorm.DB, customerCount int, count int, batchSize int) error {
	var existing int64
	if err := gormDB.WithContext(ctx).Model(&model.Order{}).Count(&existing).Error; err != nil {
		return err
	}
	if int(existing) >= count {
		return nil
	}

	fake := faker.New()
	batch := make([]model.Order, 0, batchSize)
	toCreate := count - int(existing)

	for i := 0; i < toCreate; i++ {
		batch = append(batch, buildOrder(fake, customerCount))

		if len(batch) == batchSize || i == toCreate-1 {
			if err := gormDB.WithContext(ctx).Create(&batch).Error; err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	return nil
}

func buildCustomer(fake faker.Faker) model.Customer {
	now := time.Now()

	age := fake.IntBetween(18, 75)
	gender := fake.RandomStringElement([]string{"M", "F"})
	lat := fake.Float64(6, -60, 70)
	lon := fake.Float64(6, -180, 180)
	term := fake.Lorem().Word()

	return model.Customer{
		FirstName:  fake.Person().FirstName(),
		LastName:   fake.Person().LastName(),
		Email:      fake.Internet().Email(),
		Age:        &age,
		Gender:     &gender,
		Address:    fake.Address().StreetAddress(),
		City:       fake.Address().City(),
		State:      fake.Address().State(),
		PostalCode: fake.Address().PostCode(),
		Country:    fake.Address().Country(),
		Latitude:   &lat,
		Longitude:  &lon,
		SearchTerm: &term,
		Timestamp:  fake.Time().TimeBetween(now.AddDate(-3, 0, 0), now),
	}
}

func buildOrder(fake faker.Faker, customerCount int) model.Order {
	now := time.Now()
	created := fake.Time().TimeBetween(now.AddDate(-2, 0, 0), now.AddDate(0, 0, -7))
	gender := fake.RandomStringElement([]string{"M", "F"})

	order := model.Order{
		UserID:    int64(fake.IntBetween(1, customerCount)),
		Gender:    &gender,
		CreatedAt: created,
		NumOfItem: int64(fake.IntBetween(1, 5)),
	}

	// ライフサイクル順（created→shipped→delivered→returned）に矛盾しない時刻を入れる
	status := fake.RandomStringElement([]string{
		string(model.OrderStatusPending),
		string(model.OrderStatusShipped),
		string(model.OrderStatusDelivered),
		string(model.OrderStatusDelivered),
		string(model.OrderStatusReturned),
	})
	order.Status = model.OrderStatus(status)

	if order.Status == model.OrderStatusShipped ||
		order.Status == model.OrderStatusDelivered ||
		order.Status == model.OrderStatusReturned {
		shipped := created.Add(time.Duration(fake.IntBetween(4, 72)) * time.Hour)
		order.ShippedAt = &shipped

		if order.Status != model.OrderStatusShipped {
			delivered := shipped.Add(time.Duration(fake.IntBetween(12, 120)) * time.Hour)
			order.DeliveredAt = &delivered

			if order.Status == model.OrderStatusReturned {
				returned := delivered.Add(time.Duration(fake.IntBetween(24, 240)) * time.Hour)
				order.ReturnedAt = &returned
			}
		}
	}

	return order
}
