package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	commitmentapp "github.com/muhammadheryan/inventory-ledger/application/commitment"
	itemapp "github.com/muhammadheryan/inventory-ledger/application/item"
	ledgerapp "github.com/muhammadheryan/inventory-ledger/application/ledger"
	locationapp "github.com/muhammadheryan/inventory-ledger/application/location"
	transferapp "github.com/muhammadheryan/inventory-ledger/application/transfer"
	"github.com/muhammadheryan/inventory-ledger/cmd/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	LedgerApp     ledgerapp.LedgerApp
	CommitmentApp commitmentapp.CommitmentApp
	TransferApp   transferapp.TransferApp
	ItemApp       itemapp.ItemApp
	LocationApp   locationapp.LocationApp
}

func NewTransport(cfg *config.Config, ledgerApp ledgerapp.LedgerApp, commitmentApp commitmentapp.CommitmentApp,
	transferApp transferapp.TransferApp, itemApp itemapp.ItemApp, locationApp locationapp.LocationApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		LedgerApp:     ledgerApp,
		CommitmentApp: commitmentApp,
		TransferApp:   transferApp,
		ItemApp:       itemApp,
		LocationApp:   locationApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// item registry
	router.HandleFunc("/items", rh.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/items/{id}", rh.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/items/{id}/customs", rh.UpdateItemCustoms).Methods(http.MethodPut)

	// location registry
	router.HandleFunc("/locations", rh.CreateLocation).Methods(http.MethodPost)
	router.HandleFunc("/locations", rh.ListLocations).Methods(http.MethodGet)
	router.HandleFunc("/locations/{id}", rh.GetLocation).Methods(http.MethodGet)
	router.HandleFunc("/locations/{id}", rh.UpdateLocation).Methods(http.MethodPut)
	router.HandleFunc("/locations/{id}", rh.DeleteLocation).Methods(http.MethodDelete)
	router.HandleFunc("/locations/{id}/stores", rh.SetLocationStores).Methods(http.MethodPut)
	router.HandleFunc("/locations/{id}/stores", rh.GetLocationStores).Methods(http.MethodGet)

	// ledger
	router.HandleFunc("/movements", rh.AppendMovement).Methods(http.MethodPost)
	router.HandleFunc("/movements", rh.ListMovements).Methods(http.MethodGet)

	// storefront stock reads
	router.HandleFunc("/stock/{itemID}", rh.QuantityAcrossLocations).Methods(http.MethodGet)
	router.HandleFunc("/stock/{itemID}/locations/{locationID}", rh.Quantity).Methods(http.MethodGet)
	router.HandleFunc("/stock/{itemID}/locations/{locationID}/availability", rh.Availability).Methods(http.MethodGet)
	router.HandleFunc("/stock/{itemID}/locations/{locationID}/rebuild", rh.RebuildStockLevel).Methods(http.MethodPost)

	// checkout holds
	router.HandleFunc("/commitments", rh.Commit).Methods(http.MethodPost)
	router.HandleFunc("/commitments/{reference}/fulfill", rh.Fulfill).Methods(http.MethodPost)
	router.HandleFunc("/commitments/{reference}/release", rh.Release).Methods(http.MethodPost)

	// transfers
	router.HandleFunc("/transfers", rh.CreateTransfer).Methods(http.MethodPost)
	router.HandleFunc("/transfers", rh.ListTransfers).Methods(http.MethodGet)
	router.HandleFunc("/transfers/{id}", rh.GetTransfer).Methods(http.MethodGet)
	router.HandleFunc("/transfers/{id}", rh.CancelTransfer).Methods(http.MethodDelete)
	router.HandleFunc("/transfers/{id}/dispatch", rh.DispatchTransfer).Methods(http.MethodPost)
	router.HandleFunc("/transfers/{id}/receive", rh.ReceiveTransfer).Methods(http.MethodPost)

	// internal routes for the rabbitmq consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))
	internal.HandleFunc("/commitments/{reference}/release", rh.ReleaseExpired).Methods(http.MethodPost)
	internal.HandleFunc("/purchasables/{id}/item", rh.RetireItem).Methods(http.MethodDelete)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(cfg.Auth.JWTSecret))

	return router
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, nil)
}
