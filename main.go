package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/lembremed/lembremed-api/api"
	"github.com/lembremed/lembremed-api/api/handlers"
	"github.com/lembremed/lembremed-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	zap.S().Infow("lembremed-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseUrl,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), api.CORS(a.Router)))
}
