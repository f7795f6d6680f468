package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/api/handlers"
	"github.com/legalconnect/legalconnect-api/api/scheduler"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database, hub and router
		log.Fatal(err)
	}

	s := scheduler.NewScheduler(
		databases.NewAppointmentDatabase(a.DBHelper()),
		databases.NewUserDatabase(a.DBHelper()),
		a.Hub,
	)
	s.Start()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("legalconnect-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
