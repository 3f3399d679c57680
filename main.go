package main

import (
	"log"

	"storefront/config"
	"storefront/controllers"
	"storefront/models"
	"storefront/repository"
	"storefront/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Running database migrations...")
	err = db.AutoMigrate(&models.Product{}, &models.CartLine{}, &models.Order{}, &models.OrderLineItem{}, &models.Setting{})
	if err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}
	log.Println("Database migration complete.")

	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	publisher, err := services.NewKafkaPublisher(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("Failed to initialize Kafka publisher: %v", err)
	}
	customerNotifier := services.NewKafkaNotifier(publisher, cfg.Kafka.NotificationsTopic)
	operatorNotifier := services.NewKafkaNotifier(publisher, cfg.Kafka.OperatorTopic)

	operators := services.NewAllowList(cfg.Shop.Operators)

	catalogSvc := services.NewCatalogService(productRepo, operators)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, operators)
	paymentSvc := services.NewPaymentService(orderRepo, operators, operatorNotifier)
	statusSvc := services.NewStatusService(orderRepo, operators, publisher, customerNotifier,
		cfg.Kafka.OrderEventsTopic, cfg.Shop.StrictTransitions)
	settingsSvc := services.NewSettingsService(settingsRepo, operators)

	productCtrl := controllers.NewProductController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, paymentSvc, statusSvc, settingsSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)

	app := fiber.New()

	app.Get("/products", productCtrl.ListProducts)
	app.Get("/products/:id", productCtrl.GetProduct)

	app.Get("/cart", cartCtrl.GetCart)
	app.Post("/cart/items", cartCtrl.AddItem)
	app.Delete("/cart/items/:product_id", cartCtrl.RemoveItem)
	app.Delete("/cart", cartCtrl.ClearCart)

	app.Post("/orders", orderCtrl.Checkout)
	app.Get("/orders", orderCtrl.MyOrders)
	app.Get("/orders/:id", orderCtrl.GetOrder)
	app.Post("/orders/:id/payment", orderCtrl.SubmitPayment)
	app.Post("/orders/:id/proof", orderCtrl.SubmitProof)

	app.Get("/payment-info", settingsCtrl.GetPaymentInfo)

	app.Post("/admin/products", productCtrl.CreateProduct)
	app.Put("/admin/products/:id", productCtrl.UpdateProduct)
	app.Delete("/admin/products/:id", productCtrl.DeactivateProduct)
	app.Get("/admin/orders", orderCtrl.AllOrders)
	app.Put("/admin/orders/:id/status", orderCtrl.SetStatus)
	app.Put("/admin/payment-info", settingsCtrl.SetPaymentInfo)

	log.Printf("Server is starting on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(cfg.Server.Port))
}
