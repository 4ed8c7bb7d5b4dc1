package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/keller-networks/pms-server/internal/handlers/v1/auth"
	"github.com/keller-networks/pms-server/internal/handlers/v1/diary"
	"github.com/keller-networks/pms-server/internal/handlers/v1/money"
	"github.com/keller-networks/pms-server/internal/handlers/v1/profile"
	"github.com/keller-networks/pms-server/internal/handlers/v1/status"
	"github.com/keller-networks/pms-server/internal/handlers/v1/task"
	"github.com/keller-networks/pms-server/internal/handlers/v1/todo"
	"github.com/keller-networks/pms-server/internal/handlers/v1/vault"
	"github.com/keller-networks/pms-server/internal/logging"
	"github.com/keller-networks/pms-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Serve registers every handler on a fresh Huma API and blocks on the HTTP
// server.
func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("pms-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler().Register(humaAPI)
	auth.NewHandler(r.Service.Auth).Register(humaAPI)
	profile.NewHandler(r.Service.Profile).Register(humaAPI)

	money.NewCreateBankAccountHandler(r.Service.Money).Register(humaAPI)
	money.NewListBankAccountsHandler(r.Service.Money).Register(humaAPI)
	money.NewDeleteBankAccountHandler(r.Service.Money).Register(humaAPI)
	money.NewExportBankAccountHandler(r.Service.Money).Register(humaAPI)
	money.NewReconciliationHandler(r.Service.Money).Register(humaAPI)
	money.NewCreateMoneyTaskHandler(r.Service.Money).Register(humaAPI)
	money.NewListMoneyTasksHandler(r.Service.Money).Register(humaAPI)
	money.NewUpdateMoneyTaskHandler(r.Service.Money).Register(humaAPI)
	money.NewDeleteMoneyTaskHandler(r.Service.Money).Register(humaAPI)
	money.NewDeleteAllMoneyTasksHandler(r.Service.Money).Register(humaAPI)

	task.NewHandler(r.Service.Task).Register(humaAPI)
	todo.NewHandler(r.Service.Todo).Register(humaAPI)
	diary.NewHandler(r.Service.Diary).Register(humaAPI)

	vaultHandler := vault.NewHandler(r.Service.Vault)
	vaultHandler.Register(humaAPI)
	vaultHandler.RegisterItems(humaAPI)
	vaultHandler.RegisterExport(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
