package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"LOJA_PIX_GO/handlers"
	"LOJA_PIX_GO/middleware"
)

// Dependencies reúne o que as rotas precisam.
type Dependencies struct {
	DB        handlers.Pinger
	Settings  handlers.SettingsStore
	Users     handlers.UserStore
	Charges   handlers.ChargeStore
	Gateway   handlers.ChargeGateway // nil quando a Efí não está configurada
	Pix       handlers.PixConfig
	JwtSecret []byte
}

func SetupRoutes(deps Dependencies) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)

	auth := middleware.AuthMiddleware(deps.JwtSecret)

	// Health Check
	router.HandleFunc("/health", handlers.HealthCheckHandler(deps.DB)).Methods("GET")

	// Login e usuários
	router.HandleFunc("/login", handlers.LoginHandler(deps.Users, deps.JwtSecret)).Methods("POST")
	router.Handle("/users", auth(handlers.CreateUserHandler(deps.Users))).Methods("POST")

	// Configurações
	router.HandleFunc("/settings/logo-name", handlers.FindLogoNameHandler(deps.Settings)).Methods("GET")
	router.HandleFunc("/settings/pix-key", handlers.FindPixKeyHandler(deps.Settings)).Methods("GET")
	router.Handle("/settings/admin", auth(handlers.FindAdminSettingsHandler(deps.Settings))).Methods("GET")
	router.Handle("/settings/admin", auth(handlers.SaveSettingsHandler(deps.Settings))).Methods("POST")

	// PIX estático
	router.HandleFunc("/pix/code", handlers.GeneratePixCodeHandler(deps.Settings, deps.Pix)).Methods("POST")
	router.HandleFunc("/pix/qrcode.png", handlers.PixQRCodeImageHandler(deps.Settings, deps.Pix)).Methods("GET")
	router.HandleFunc("/pix/validate", handlers.ValidatePixKeyHandler()).Methods("POST")
	router.HandleFunc("/pix/decode", handlers.DecodePixHandler()).Methods("POST")

	// Cobranças dinâmicas (Efí)
	var create, status http.Handler = handlers.ChargesDisabledHandler(), handlers.ChargesDisabledHandler()
	if deps.Gateway != nil {
		create = handlers.CreatePixChargeHandler(deps.Settings, deps.Gateway, deps.Charges)
		status = handlers.PixChargeStatusHandler(deps.Gateway, deps.Charges)
	}
	router.Handle("/pix/cobranca", auth(create)).Methods("POST")
	router.Handle("/pix/cobranca/{txid}", status).Methods("GET")

	return router
}
