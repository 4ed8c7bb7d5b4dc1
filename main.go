package main

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/keller-networks/pms-server/api"
	"github.com/keller-networks/pms-server/internal/config"
	"github.com/keller-networks/pms-server/internal/logging"
	"github.com/keller-networks/pms-server/internal/operator"
	"github.com/keller-networks/pms-server/internal/service"
	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/vaultcipher"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("pms-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	// The cipher key comes from the environment only; startup fails without it.
	cipher, err := vaultcipher.NewCipher(envConfig.VaultSecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("vaultcipher.NewCipher")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, logger, runtime.NumCPU())
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, cipher)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
