// cmd/main.go
package main

import (
	"mock-bank-api/app"

	_ "mock-bank-api/docs"
)

// @title           Mock Banking API
// @version         1.0
// @description     Demo banking backend serving seeded in-memory data.

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
