package main

import (
	"os"

	_ "gestao_reparos/docs"
	"gestao_reparos/cmd/api/commands"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão de Reparos API
// @version         1.0
// @description     Quotes, in-progress services and finances of a repair and painting business.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
