package main

import (
	"log"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数をそのまま使う
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	healthRepo := infraRepo.NewHealthGormRepository(gormDB)

	//Usecase生成
	customerUC := usecase.NewCustomerUsecase(customerRepo, orderRepo, cfg.MaxPageSize)
	orderUC := usecase.NewOrderUsecase(customerRepo, orderRepo, cfg.MaxPageSize)
	healthUC := usecase.NewHealthUsecase(healthRepo, cfg.APIVersion)

	//Handler生成
	customerH := handler.NewCustomerHandler(customerUC, cfg)
	orderH := handler.NewOrderHandler(orderUC, cfg)
	healthH := handler.NewHealthHandler(healthUC, cfg)
	metaH := handler.NewMetaHandler(cfg)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, metaH, customerH, orderH, healthH)
	if err := server.Start(e, addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
