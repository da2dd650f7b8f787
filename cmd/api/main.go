package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comfitco/luxe-store/internal/admin"
	"github.com/comfitco/luxe-store/internal/catalog"
	"github.com/comfitco/luxe-store/internal/config"
	"github.com/comfitco/luxe-store/internal/database"
	"github.com/comfitco/luxe-store/internal/models"
	"github.com/comfitco/luxe-store/internal/notice"
	"github.com/comfitco/luxe-store/internal/orders"
	"github.com/comfitco/luxe-store/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database successfully")

	board := notice.NewBoard(50)

	productEvents, err := database.Listen(&cfg.Database, &cfg.Listener, catalog.NotifyChannel)
	if err != nil {
		log.Fatalf("Subscribe to product changes: %v", err)
	}
	orderEvents, err := database.Listen(&cfg.Database, &cfg.Listener, orders.NotifyChannel)
	if err != nil {
		log.Fatalf("Subscribe to order changes: %v", err)
	}

	catalogSvc := catalog.NewService(db, productEvents, board)
	orderSvc := orders.NewService(db, orderEvents, board)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogSvc.Start(ctx)
	orderSvc.Start(ctx)
	defer catalogSvc.Stop()
	defer orderSvc.Stop()

	if err := catalogSvc.SeedDefaults(ctx); err != nil {
		log.Printf("Seed default catalog: %v", err)
	}

	gate := admin.NewGate(cfg.Admin.AccessCode)

	mux := http.NewServeMux()
	mux.HandleFunc("/products", handleProducts(catalogSvc, gate))
	mux.HandleFunc("/products/", handleProductByID(catalogSvc, gate))
	mux.HandleFunc("/orders", handleOrders(catalogSvc, orderSvc, gate))
	mux.HandleFunc("/admin/login", handleAdminLogin(gate))
	mux.HandleFunc("/notices", handleNotices(board))
	mux.HandleFunc("/healthz", handleHealth(db))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}

func handleProducts(svc *catalog.Service, gate *admin.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		switch r.Method {
		case http.MethodGet:
			var products []models.Product
			if raw := r.URL.Query().Get("category"); raw != "" && raw != "all" {
				category := models.Category(raw)
				if !category.Valid() {
					respondError(w, http.StatusBadRequest, "Unknown category")
					return
				}
				products = svc.ProductsByCategory(category)
			} else {
				products = svc.Products()
			}

			respondJSON(w, http.StatusOK, map[string]any{
				"products": products,
				"loading":  svc.Loading(),
			})

		case http.MethodPost:
			if !authorized(r, gate) {
				respondError(w, http.StatusUnauthorized, "Admin access required")
				return
			}

			var req validation.AddProductRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			if err := validation.Struct(req); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}

			price := decimal.NewFromFloat(req.Price)
			if !svc.Add(ctx, req.Name, price, req.Image, models.Category(req.Category)) {
				respondError(w, http.StatusBadGateway, "Failed to add product")
				return
			}

			// The canonical row arrives via the change listener; the
			// caller reads it from the next snapshot.
			respondJSON(w, http.StatusAccepted, map[string]bool{"accepted": true})

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleProductByID(svc *catalog.Service, gate *admin.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		if !authorized(r, gate) {
			respondError(w, http.StatusUnauthorized, "Admin access required")
			return
		}

		id, err := uuid.Parse(r.URL.Path[len("/products/"):])
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid product ID")
			return
		}

		svc.Remove(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleOrders(catalogSvc *catalog.Service, orderSvc *orders.Service, gate *admin.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		switch r.Method {
		case http.MethodGet:
			if !authorized(r, gate) {
				respondError(w, http.StatusUnauthorized, "Admin access required")
				return
			}
			respondJSON(w, http.StatusOK, map[string]any{
				"orders":  orderSvc.Orders(),
				"loading": orderSvc.Loading(),
			})

		case http.MethodPost:
			var req validation.PlaceOrderRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			if err := validation.Struct(req); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}

			product, ok := findProduct(catalogSvc.Products(), req.ProductID)
			if !ok {
				respondError(w, http.StatusNotFound, "Product not found")
				return
			}

			checkout := orders.NewCheckout(orderSvc)
			checkout.Select(product)
			if !checkout.Submit(ctx, orders.OrderForm{
				CustomerName: req.CustomerName,
				MobileNumber: req.MobileNumber,
				Address:      req.Address,
				Size:         models.Size(req.Size),
				Quantity:     req.Quantity,
				Message:      req.Message,
			}) {
				respondError(w, http.StatusBadGateway, "Failed to place order")
				return
			}

			total := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
			respondJSON(w, http.StatusAccepted, map[string]any{
				"accepted": true,
				"total":    total,
			})

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleAdminLogin(gate *admin.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req validation.AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if !gate.Authorize(req.Code) {
			respondError(w, http.StatusUnauthorized, "Invalid access code")
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"authorized": true})
	}
}

func handleNotices(board *notice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"notices": board.Recent()})
	}
}

func handleHealth(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func findProduct(products []models.Product, id string) (models.Product, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return models.Product{}, false
	}
	for _, p := range products {
		if p.ID == parsed {
			return p, true
		}
	}
	return models.Product{}, false
}

func authorized(r *http.Request, gate *admin.Gate) bool {
	return gate.Authorize(r.Header.Get("X-Admin-Code"))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
