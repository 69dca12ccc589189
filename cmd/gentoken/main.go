package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/piresc/wheelshare/internal/pkg/config"
	jwtpkg "github.com/piresc/wheelshare/internal/pkg/jwt"
	"github.com/piresc/wheelshare/internal/pkg/models"
)

// gentoken mints a bearer token accepted by the rides service, for local testing
func main() {
	configPath := flag.String("config", "config/rides.env", "env file holding JWT_SECRET")
	userID := flag.String("user", "", "user id (uuid); a random one when empty")
	role := flag.String("role", string(models.RoleCustomer), "CUSTOMER, DRIVER or ADMIN")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			log.Fatalf("invalid user id %q: %v", *userID, err)
		}
		id = parsed
	}

	r := models.Role(strings.ToUpper(*role))
	if !r.Valid() {
		log.Fatalf("invalid role %q", *role)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(id, r, configs.JWT)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user=%s role=%s expires_at=%d\n", id, r, expiresAt)
	fmt.Println(token)
}
